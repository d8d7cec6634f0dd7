package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/view"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

const offerDateLayout = "2006-01-02"

func runCarousel(ctx context.Context, deps Deps, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(deps.Out, "Acciones: list, add, edit, delete")
		return 2
	}
	switch args[0] {
	case "list":
		return carouselList(ctx, deps, args[1:])
	case "add":
		return carouselAdd(ctx, deps, args[1:])
	case "edit":
		return carouselEdit(ctx, deps, args[1:])
	case "delete":
		return carouselDelete(ctx, deps, args[1:])
	default:
		fmt.Fprintf(deps.Out, "acción desconocida: carousel %s\n", args[0])
		return 2
	}
}

func carouselList(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("carousel list", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	search := fs.String("search", "", "búsqueda por oferta o título")
	status := fs.String("status", "all", "all | active | inactive")
	page := fs.Int("page", 1, "página (1-based)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	deps.Carousel.Refresh(ctx)

	ctrl := view.NewController(func(q view.OfferQuery, items []entity.CarouselOffer) []entity.CarouselOffer {
		return q.Apply(items)
	}, deps.PageSize)
	ctrl.SetQuery(view.OfferQuery{Search: *search, Status: view.Status(*status)})
	ctrl.SetPage(*page)

	p := ctrl.Build(deps.Carousel.Offers())
	rows := make([][]string, 0, len(p.Items))
	for _, o := range p.Items {
		rows = append(rows, []string{
			o.ID, o.OfferName, o.Title,
			fmt.Sprintf("%d", o.Priority),
			statusLabel(o.IsActive()),
			o.StartDate.Format(offerDateLayout),
			o.EndDate.Format(offerDateLayout),
		})
	}
	printTable(deps.Out, []string{"ID", "Offer", "Title", "Priority", "Status", "Start", "End"}, rows)
	printPageFooter(deps.Out, p.Number, p.TotalPages, p.TotalItems)
	return 0
}

func parseOfferFlags(fs *flag.FlagSet) (name, title, status, start, end, image *string, priority *int) {
	name = fs.String("offer-name", "", "nombre interno de la oferta")
	title = fs.String("title", "", "título visible")
	priority = fs.Int("priority", 0, "prioridad de orden")
	status = fs.String("status", entity.OfferStatusActive, "active | inactive")
	start = fs.String("start", "", "fecha de inicio (AAAA-MM-DD)")
	end = fs.String("end", "", "fecha de fin (AAAA-MM-DD)")
	image = fs.String("image", "", "ruta local de la imagen")
	return
}

func offerFormFrom(deps Deps, name, title, status, start, end, image string, priority int) (dto.OfferForm, bool) {
	startDate, err := time.Parse(offerDateLayout, start)
	if err != nil {
		fmt.Fprintf(deps.Out, "fecha de inicio inválida: %s\n", start)
		return dto.OfferForm{}, false
	}
	endDate, err := time.Parse(offerDateLayout, end)
	if err != nil {
		fmt.Fprintf(deps.Out, "fecha de fin inválida: %s\n", end)
		return dto.OfferForm{}, false
	}
	return dto.OfferForm{
		OfferName: name,
		Title:     title,
		Priority:  priority,
		Status:    status,
		StartDate: startDate,
		EndDate:   endDate,
		ImagePath: image,
	}, true
}

func carouselAdd(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("carousel add", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	name, title, status, start, end, image, priority := parseOfferFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if !requireSession(deps) {
		return 1
	}
	form, ok := offerFormFrom(deps, *name, *title, *status, *start, *end, *image, *priority)
	if !ok {
		return 2
	}
	if err := deps.Carousel.Create(ctx, form); err != nil {
		return 1
	}
	return 0
}

func carouselEdit(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("carousel edit", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id de la oferta")
	name, title, status, start, end, image, priority := parseOfferFlags(fs)
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
	form, ok := offerFormFrom(deps, *name, *title, *status, *start, *end, *image, *priority)
	if !ok {
		return 2
	}
	if err := deps.Carousel.Update(ctx, *id, form); err != nil {
		return 1
	}
	return 0
}

func carouselDelete(ctx context.Context, deps Deps, args []string) int {
	fs := flag.NewFlagSet("carousel delete", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	id := fs.String("id", "", "id de la oferta")
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
	deps.Carousel.Refresh(ctx)

	var current *entity.CarouselOffer
	for _, o := range deps.Carousel.Offers() {
		if o.ID == *id {
			current = &o
			break
		}
	}
	if current == nil {
		fmt.Fprintf(deps.Out, "oferta %s no encontrada\n", *id)
		return 1
	}
	if !*yes && !confirm(deps.In, deps.Out, fmt.Sprintf("Delete %q? Esta acción es permanente.", current.OfferName)) {
		fmt.Fprintln(deps.Out, "Cancelado.")
		return 0
	}
	deps.Carousel.Delete(ctx, *id)
	return 0
}
