package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/export"
	"github.com/jhoicas/comercio-admin/internal/application/view"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

func runCategories(ctx context.Context, deps Deps, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(deps.Out, "Acciones: list, add, edit, toggle, export")
		return 2
	}
	switch args[0] {
	case "list":
		return categoriesList(ctx, deps, args[1:])
	case "add":
		return categoriesAdd(ctx, deps, args[1:])
	case "edit":
		return categoriesEdit(ctx, deps, args[1:])
	case "toggle":
		return categoriesToggle(ctx, deps, args[1:])
	case "export":
		return categoriesExport(ctx, deps, args[1:])
	default:
		fmt.Fprintf(deps.Out, "acción desconocida: categories %s\n", args[0])
		return 2
	}
}

func categoriesList(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("categories list", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre")
	status := fs.String("status", "all", "all | active | inactive")
	page := fs.Int("page", 1, "página (1-based)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Categories.Refresh(ctx)

	ctrl := view.NewController(func(q view.CategoryQuery, items []entity.Category) []entity.Category {
		return q.Apply(items)
	}, deps.PageSize)
	ctrl.SetQuery(view.CategoryQuery{Search: *search, Status: view.Status(*status)})
	ctrl.SetPage(*page)

	p := ctrl.Build(deps.Categories.Categories())
	rows := make([][]string, 0, len(p.Items))
	for _, c := range p.Items {
		rows = append(rows, []string{c.ID, c.Name, statusLabel(c.IsActive)})
	}
	printTable(deps.Out, []string{"ID", "Name", "Status"}, rows)
	printPageFooter(deps.Out, p.Number, p.TotalPages, p.TotalItems)
	return 0
}

func categoriesAdd(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("categories add", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	name := fs.String("name", "", "nombre de la categoría")
	image := fs.String("image", "", "ruta local de la imagen (opcional)")
	active := fs.Bool("active", true, "estado inicial")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	form := dto.CategoryForm{Name: *name, IsActive: active, ImagePath: *image}
	if err := deps.Categories.Create(ctx, form); err != nil {
		return 1
	}
	return 0
}

func categoriesEdit(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("categories edit", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id de la categoría")
	name := fs.String("name", "", "nuevo nombre")
	image := fs.String("image", "", "nueva imagen (opcional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *id == "" {
		fmt.Fprintln(deps.Out, "falta -id")
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	form := dto.CategoryForm{Name: *name, ImagePath: *image}
	if err := deps.Categories.Update(ctx, *id, form); err != nil {
		return 1
	}
	return 0
}

func categoriesToggle(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("categories toggle", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id de la categoría")
	yes := fs.Bool("yes", false, "no pedir confirmación")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *id == "" {
		fmt.Fprintln(deps.Out, "falta -id")
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Categories.Refresh(ctx)

	var current *entity.Category
	for _, c := range deps.Categories.Categories() {
		if c.ID == *id {
			current = &c
			break
		}
	}
	if current == nil {
		fmt.Fprintf(deps.Out, "categoría %s no encontrada\n", *id)
		return 1
	}
	if !*yes {
		var prompt string
		if current.IsActive {
			// La cascada la ejecuta el servidor; aquí solo se advierte.
			prompt = fmt.Sprintf("Deactivate %q? Sus subcategorías y productos también se desactivarán.", current.Name)
		} else {
			prompt = fmt.Sprintf("Activate %q?", current.Name)
		}
		if !confirm(deps.In, deps.Out, prompt) {
			fmt.Fprintln(deps.Out, "Cancelado.")
			return 0
		}
	}
	deps.Categories.ToggleActive(ctx, *id)
	return 0
}

func categoriesExport(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("categories export", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre")
	status := fs.String("status", "all", "all | active | inactive")
	out := fs.String("out", "categories-report.pdf", "archivo de salida")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Categories.Refresh(ctx)

	// El reporte consume la lista filtrada completa, no la página visible.
	q := view.CategoryQuery{Search: *search, Status: view.Status(*status)}
	filtered := q.Apply(deps.Categories.Categories())
	return writeReport(ctx, deps, export.CategoriesReport(filtered), *out)
}
