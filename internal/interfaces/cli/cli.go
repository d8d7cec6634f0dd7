// Package cli implementa la consola administrativa: cada subcomando es el
// equivalente headless de una pantalla del portal (listados con búsqueda,
// filtros y paginación; formularios de alta/edición; toggles con
// confirmación; exportación a PDF).
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/comercio-admin/internal/application/export"
	"github.com/jhoicas/comercio-admin/internal/application/store"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// Deps dependencias de la consola, construidas en cmd/admin.
type Deps struct {
	Auth          *store.AuthStore
	Categories    *store.CategoryStore
	Subcategories *store.SubcategoryStore
	Products      *store.ProductStore
	Carousel      *store.CarouselStore
	Orders        *store.OrderStore
	Reports       export.ReportGenerator
	PageSize      int
	Log           *logger.Logger

	In  io.Reader // confirmaciones
	Out io.Writer // tablas y notificaciones
}

// Run despacha el subcomando y devuelve el código de salida del proceso.
func Run(ctx context.Context, deps Deps, args []string) int {
	if len(args) == 0 {
		usage(deps.Out)
		return 2
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login", "logout", "change-password":
		return runAuth(ctx, deps, cmd, rest)
	case "categories":
		return runCategories(ctx, deps, rest)
	case "subcategories":
		return runSubcategories(ctx, deps, rest)
	case "products":
		return runProducts(ctx, deps, rest)
	case "carousel":
		return runCarousel(ctx, deps, rest)
	case "orders":
		return runOrders(ctx, deps, rest)
	case "help", "-h", "--help":
		usage(deps.Out)
		return 0
	default:
		fmt.Fprintf(deps.Out, "comando desconocido: %s\n\n", cmd)
		usage(deps.Out)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Uso: admin <comando> [acción] [flags]

Comandos:
  login            -email -password
  logout
  change-password  -current -new
  categories       list | add | edit | toggle | export
  subcategories    list | add | edit | toggle | export
  products         list | add | edit | toggle | export
  carousel         list | add | edit | delete
  orders           list | set-status | export

Use 'admin <comando> <acción> -h' para ver los flags de cada acción.
`)
}

// requireSession restaura la sesión persistida; sin sesión válida la consola
// no ejecuta acciones contra el backend.
func requireSession(deps Deps) bool {
	if err := deps.Auth.LoadSession(); err != nil {
		fmt.Fprintln(deps.Out, "No hay sesión activa: ejecute 'admin login' primero.")
		return false
	}
	return true
}

// statusLabel etiqueta de estado de una fila de catálogo, igual que en el
// portal.
func statusLabel(isActive bool) string {
	if isActive {
		return "Active"
	}
	return "Disabled"
}

// writeReport renderiza el reporte y lo escribe en disco.
func writeReport(ctx context.Context, deps Deps, report export.Report, path string) int {
	data, err := deps.Reports.Generate(ctx, report)
	if err != nil {
		deps.Log.Error().Err(err).Str("report", report.Title).Msg("generar reporte")
		fmt.Fprintf(deps.Out, "✖ Export: %v\n", err)
		return 1
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(deps.Out, "✖ Export: %v\n", err)
		return 1
	}
	fmt.Fprintf(deps.Out, "Reporte generado: %s\n", path)
	return 0
}
