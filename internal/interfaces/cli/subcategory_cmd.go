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

func runSubcategories(ctx context.Context, deps Deps, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(deps.Out, "Acciones: list, add, edit, toggle, export")
		return 2
	}
	switch args[0] {
	case "list":
		return subcategoriesList(ctx, deps, args[1:])
	case "add":
		return subcategoriesAdd(ctx, deps, args[1:])
	case "edit":
		return subcategoriesEdit(ctx, deps, args[1:])
	case "toggle":
		return subcategoriesToggle(ctx, deps, args[1:])
	case "export":
		return subcategoriesExport(ctx, deps, args[1:])
	default:
		fmt.Fprintf(deps.Out, "acción desconocida: subcategories %s\n", args[0])
		return 2
	}
}

func subcategoriesList(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("subcategories list", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre")
	status := fs.String("status", "all", "all | active | inactive")
	category := fs.String("category", "", "filtrar por categoría padre (id)")
	page := fs.Int("page", 1, "página (1-based)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	// Las categorías se cargan en paralelo conceptual en el portal; aquí en
	// secuencia, solo para resolver el nombre del padre en cada fila.
	deps.Subcategories.Refresh(ctx)
	deps.Categories.Refresh(ctx)
	categories := deps.Categories.Categories()

	ctrl := view.NewController(func(q view.SubcategoryQuery, items []entity.Subcategory) []entity.Subcategory {
		return q.Apply(items)
	}, deps.PageSize)
	ctrl.SetQuery(view.SubcategoryQuery{
		Search:     *search,
		Status:     view.Status(*status),
		CategoryID: *category,
	})
	ctrl.SetPage(*page)

	p := ctrl.Build(deps.Subcategories.Subcategories())
	rows := make([][]string, 0, len(p.Items))
	for _, s := range p.Items {
		rows = append(rows, []string{
			s.ID, s.Name,
			entity.CategoryName(categories, s.Category),
			statusLabel(s.IsActive),
		})
	}
	printTable(deps.Out, []string{"ID", "Name", "Parent Category", "Status"}, rows)
	printPageFooter(deps.Out, p.Number, p.TotalPages, p.TotalItems)
	return 0
}

func subcategoriesAdd(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("subcategories add", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	name := fs.String("name", "", "nombre de la subcategoría")
	category := fs.String("category", "", "id de la categoría padre")
	active := fs.Bool("active", true, "estado inicial")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Categories.Refresh(ctx)

	form := dto.SubcategoryForm{Name: *name, CategoryID: *category, IsActive: active}
	if err := deps.Subcategories.Create(ctx, form, deps.Categories.Categories()); err != nil {
		return 1
	}
	return 0
}

func subcategoriesEdit(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("subcategories edit", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id de la subcategoría")
	name := fs.String("name", "", "nuevo nombre")
	category := fs.String("category", "", "id de la categoría padre")
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

	form := dto.SubcategoryForm{Name: *name, CategoryID: *category}
	if err := deps.Subcategories.Update(ctx, *id, form, deps.Categories.Categories()); err != nil {
		return 1
	}
	return 0
}

func subcategoriesToggle(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("subcategories toggle", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id de la subcategoría")
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
	deps.Subcategories.Refresh(ctx)

	var current *entity.Subcategory
	for _, s := range deps.Subcategories.Subcategories() {
		if s.ID == *id {
			current = &s
			break
		}
	}
	if current == nil {
		fmt.Fprintf(deps.Out, "subcategoría %s no encontrada\n", *id)
		return 1
	}
	if !*yes {
		var prompt string
		if current.IsActive {
			prompt = fmt.Sprintf("Deactivate %q? Sus productos también se desactivarán.", current.Name)
		} else {
			prompt = fmt.Sprintf("Activate %q?", current.Name)
		}
		if !confirm(deps.In, deps.Out, prompt) {
			fmt.Fprintln(deps.Out, "Cancelado.")
			return 0
		}
	}
	deps.Subcategories.ToggleActive(ctx, *id)
	return 0
}

func subcategoriesExport(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("subcategories export", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre")
	status := fs.String("status", "all", "all | active | inactive")
	category := fs.String("category", "", "filtrar por categoría padre (id)")
	out := fs.String("out", "subcategories-report.pdf", "archivo de salida")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Subcategories.Refresh(ctx)
	deps.Categories.Refresh(ctx)

	q := view.SubcategoryQuery{
		Search:     *search,
		Status:     view.Status(*status),
		CategoryID: *category,
	}
	filtered := q.Apply(deps.Subcategories.Subcategories())
	report := export.SubcategoriesReport(filtered, deps.Categories.Categories())
	return writeReport(ctx, deps, report, *out)
}
