package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/jhoicas/comercio-admin/internal/application/export"
	"github.com/jhoicas/comercio-admin/internal/application/view"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

func runOrders(ctx context.Context, deps Deps, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(deps.Out, "Acciones: list, set-status, export")
		return 2
	}
	switch args[0] {
	case "list":
		return ordersList(ctx, deps, args[1:])
	case "set-status":
		return ordersSetStatus(ctx, deps, args[1:])
	case "export":
		return ordersExport(ctx, deps, args[1:])
	default:
		fmt.Fprintf(deps.Out, "acción desconocida: orders %s\n", args[0])
		return 2
	}
}

func ordersList(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("orders list", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre del destinatario")
	status := fs.String("status", "", "filtrar por estado ("+strings.Join(statusNames(), ", ")+")")
	page := fs.Int("page", 1, "página (1-based)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Orders.Refresh(ctx)

	ctrl := view.NewController(func(q view.OrderQuery, items []entity.Order) []entity.Order {
		return q.Apply(items)
	}, deps.PageSize)
	ctrl.SetQuery(view.OrderQuery{Search: *search, Status: entity.OrderStatus(*status)})
	ctrl.SetPage(*page)

	p := ctrl.Build(deps.Orders.Orders())
	rows := make([][]string, 0, len(p.Items))
	for _, o := range p.Items {
		paid := "No"
		if o.IsPaid {
			paid = "Yes"
		}
		rows = append(rows, []string{
			o.ID,
			o.ShippingAddress.FullName,
			o.TotalPrice.StringFixed(2),
			paid,
			string(o.Status),
			o.CreatedAt.Format("2006-01-02"),
		})
	}
	printTable(deps.Out, []string{"ID", "Customer", "Total", "Paid", "Status", "Date"}, rows)
	printPageFooter(deps.Out, p.Number, p.TotalPages, p.TotalItems)
	return 0
}

func ordersSetStatus(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("orders set-status", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id de la orden")
	status := fs.String("status", "", "nuevo estado ("+strings.Join(statusNames(), ", ")+")")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *id == "" || *status == "" {
		fmt.Fprintln(deps.Out, "faltan -id y/o -status")
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	if err := deps.Orders.SetStatus(ctx, *id, entity.OrderStatus(*status)); err != nil {
		return 1
	}
	return 0
}

func ordersExport(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("orders export", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por nombre del destinatario")
	status := fs.String("status", "", "filtrar por estado")
	out := fs.String("out", "orders-report.pdf", "archivo de salida")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Orders.Refresh(ctx)

	q := view.OrderQuery{Search: *search, Status: entity.OrderStatus(*status)}
	filtered := q.Apply(deps.Orders.Orders())
	return writeReport(ctx, deps, export.OrdersReport(filtered), *out)
}

func statusNames() []string {
	all := entity.OrderStatuses()
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, string(s))
	}
	return names
}
