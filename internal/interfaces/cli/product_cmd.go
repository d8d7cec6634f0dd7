package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/export"
	"github.com/jhoicas/comercio-admin/internal/application/view"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

func runProducts(ctx context.Context, deps Deps, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(deps.Out, "Acciones: list, add, edit, toggle, export")
		return 2
	}
	switch args[0] {
	case "list":
		return productsList(ctx, deps, args[1:])
	case "add":
		return productsAdd(ctx, deps, args[1:])
	case "edit":
		return productsEdit(ctx, deps, args[1:])
	case "toggle":
		return productsToggle(ctx, deps, args[1:])
	case "export":
		return productsExport(ctx, deps, args[1:])
	default:
		fmt.Fprintf(deps.Out, "acción desconocida: products %s\n", args[0])
		return 2
	}
}

func productsList(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("products list", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre")
	status := fs.String("status", "all", "all | active | inactive")
	category := fs.String("category", "", "filtrar por categoría (id)")
	subcategory := fs.String("subcategory", "", "filtrar por subcategoría (id)")
	page := fs.Int("page", 1, "página (1-based)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Products.Refresh(ctx)

	ctrl := view.NewController(func(q view.ProductQuery, items []entity.Product) []entity.Product {
		return q.Apply(items)
	}, deps.PageSize)
	ctrl.SetQuery(view.ProductQuery{
		Search:        *search,
		Status:        view.Status(*status),
		CategoryID:    *category,
		SubcategoryID: *subcategory,
	})
	ctrl.SetPage(*page)

	p := ctrl.Build(deps.Products.Products())
	rows := make([][]string, 0, len(p.Items))
	for _, prod := range p.Items {
		rows = append(rows, []string{
			prod.ID, prod.Name,
			prod.Price.StringFixed(2),
			fmt.Sprintf("%d", prod.Stock),
			statusLabel(prod.IsActive),
		})
	}
	printTable(deps.Out, []string{"ID", "Name", "Price", "Stock", "Status"}, rows)
	printPageFooter(deps.Out, p.Number, p.TotalPages, p.TotalItems)
	return 0
}

func productsAdd(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("products add", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	name := fs.String("name", "", "nombre del producto")
	description := fs.String("description", "", "descripción")
	price := fs.String("price", "0", "precio")
	stock := fs.Int("stock", 0, "stock")
	category := fs.String("category", "", "id de la categoría")
	subcategory := fs.String("subcategory", "", "id de la subcategoría (debe pertenecer a la categoría)")
	images := fs.String("images", "", "rutas locales de imágenes separadas por coma")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	parsedPrice, err := decimal.NewFromString(*price)
	if err != nil {
		fmt.Fprintf(deps.Out, "precio inválido: %s\n", *price)
		return 2
	}
	deps.Subcategories.Refresh(ctx)

	form := dto.ProductForm{
		Name:          *name,
		Description:   *description,
		Price:         parsedPrice,
		Stock:         *stock,
		CategoryID:    *category,
		SubcategoryID: *subcategory,
		ImagePaths:    splitPaths(*images),
	}
	if err := deps.Products.Create(ctx, form, deps.Subcategories.Subcategories()); err != nil {
		return 1
	}
	return 0
}

func productsEdit(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("products edit", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id del producto")
	name := fs.String("name", "", "nuevo nombre")
	description := fs.String("description", "", "descripción")
	price := fs.String("price", "0", "precio")
	stock := fs.Int("stock", 0, "stock")
	category := fs.String("category", "", "id de la categoría")
	subcategory := fs.String("subcategory", "", "id de la subcategoría")
	images := fs.String("images", "", "rutas locales de imágenes separadas por coma")
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
	parsedPrice, err := decimal.NewFromString(*price)
	if err != nil {
		fmt.Fprintf(deps.Out, "precio inválido: %s\n", *price)
		return 2
	}
	deps.Subcategories.Refresh(ctx)

	form := dto.ProductForm{
		Name:          *name,
		Description:   *description,
		Price:         parsedPrice,
		Stock:         *stock,
		CategoryID:    *category,
		SubcategoryID: *subcategory,
		ImagePaths:    splitPaths(*images),
	}
	if err := deps.Products.Update(ctx, *id, form, deps.Subcategories.Subcategories()); err != nil {
		return 1
	}
	return 0
}

func productsToggle(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("products toggle", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id del producto")
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
	deps.Products.Refresh(ctx)

	var current *entity.Product
	for _, p := range deps.Products.Products() {
		if p.ID == *id {
			current = &p
			break
		}
	}
	if current == nil {
		fmt.Fprintf(deps.Out, "producto %s no encontrado\n", *id)
		return 1
	}
	if !*yes {
		action := "Activate"
		if current.IsActive {
			action = "Deactivate"
		}
		if !confirm(deps.In, deps.Out, fmt.Sprintf("%s %q?", action, current.Name)) {
			fmt.Fprintln(deps.Out, "Cancelado.")
			return 0
		}
	}
	deps.Products.ToggleActive(ctx, *id)
	return 0
}

func productsExport(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("products export", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre")
	status := fs.String("status", "all", "all | active | inactive")
	category := fs.String("category", "", "filtrar por categoría (id)")
	subcategory := fs.String("subcategory", "", "filtrar por subcategoría (id)")
	out := fs.String("out", "products-report.pdf", "archivo de salida")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Products.Refresh(ctx)

	q := view.ProductQuery{
		Search:        *search,
		Status:        view.Status(*status),
		CategoryID:    *category,
		SubcategoryID: *subcategory,
	}
	filtered := q.Apply(deps.Products.Products())
	return writeReport(ctx, deps, export.ProductsReport(filtered), *out)
}

func splitPaths(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
