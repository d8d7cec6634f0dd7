// Package export arma los reportes tabulares de la consola. Los reportes
// consumen la proyección filtrada completa, no la página visible: exportar
// con un filtro activo produce exactamente las filas que el filtro dejó.
package export

import (
	"context"
	"strconv"
	"time"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// Estados legibles de una fila de catálogo en el reporte.
const (
	statusActive   = "Active"
	statusDisabled = "Disabled"
)

// Report reporte tabular listo para renderizar.
type Report struct {
	Title       string
	Columns     []string
	Rows        [][]string
	GeneratedAt time.Time
}

// ReportGenerator puerto de renderizado; la implementación decide el formato
// (PDF en producción).
type ReportGenerator interface {
	Generate(ctx context.Context, report Report) ([]byte, error)
}

func rowStatus(isActive bool) string {
	if isActive {
		return statusActive
	}
	return statusDisabled
}

// CategoriesReport arma el reporte de categorías.
func CategoriesReport(categories []entity.Category) Report {
	rows := make([][]string, 0, len(categories))
	for i, c := range categories {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), c.Name, rowStatus(c.IsActive),
		})
	}
	return Report{
		Title:       "Categories Report",
		Columns:     []string{"#", "Category Name", "Status"},
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
}

// SubcategoriesReport arma el reporte de subcategorías. El nombre del padre
// se resuelve contra la lista de categorías cuando la referencia vino como
// id plano; sin resolución posible se reporta "Unknown".
func SubcategoriesReport(subcategories []entity.Subcategory, categories []entity.Category) Report {
	rows := make([][]string, 0, len(subcategories))
	for i, s := range subcategories {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), s.Name,
			entity.CategoryName(categories, s.Category),
			rowStatus(s.IsActive),
		})
	}
	return Report{
		Title:       "Subcategories Report",
		Columns:     []string{"#", "Subcategory Name", "Parent Category", "Status"},
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
}

// ProductsReport arma el reporte de inventario de productos.
func ProductsReport(products []entity.Product) Report {
	rows := make([][]string, 0, len(products))
	for i, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), p.Name,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
			rowStatus(p.IsActive),
		})
	}
	return Report{
		Title:       "Products Inventory Report",
		Columns:     []string{"#", "Product Name", "Price", "Stock", "Status"},
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
}

// OrdersReport arma el reporte de pedidos.
func OrdersReport(orders []entity.Order) Report {
	rows := make([][]string, 0, len(orders))
	for i, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), o.ID,
			o.ShippingAddress.FullName,
			o.TotalPrice.StringFixed(2),
			string(o.Status),
			o.CreatedAt.Format("2006-01-02"),
		})
	}
	return Report{
		Title:       "Orders Report",
		Columns:     []string{"#", "Order", "Customer", "Total", "Status", "Date"},
		Rows:        rows,
		GeneratedAt: time.Now(),
	}
}
