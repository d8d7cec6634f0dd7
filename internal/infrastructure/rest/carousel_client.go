package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var _ remote.CarouselAPI = (*CarouselClient)(nil)

// CarouselClient adaptador de /carousel/admin. Aquí el DELETE elimina de
// verdad: el carrusel no participa del protocolo de toggle.
type CarouselClient struct {
	c *Client
}

// NewCarouselClient construye el adaptador.
func NewCarouselClient(c *Client) *CarouselClient {
	return &CarouselClient{c: c}
}

// List trae la colección completa (vista administrativa, incluye inactivas).
func (a *CarouselClient) List(ctx context.Context) ([]entity.CarouselOffer, error) {
	var out []entity.CarouselOffer
	if err := a.c.getJSON(ctx, "/carousel/admin", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea la oferta (multipart; la imagen es opcional).
func (a *CarouselClient) Create(ctx context.Context, in remote.OfferInput) (*entity.CarouselOffer, error) {
	var out entity.CarouselOffer
	err := a.c.submitMultipart(ctx, http.MethodPost, "/carousel/admin",
		offerFields(in), imageFiles("image", in.ImagePath), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edita la oferta.
func (a *CarouselClient) Update(ctx context.Context, id string, in remote.OfferInput) (*entity.CarouselOffer, error) {
	var out entity.CarouselOffer
	err := a.c.submitMultipart(ctx, http.MethodPut, "/carousel/admin/"+id,
		offerFields(in), imageFiles("image", in.ImagePath), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina la oferta.
func (a *CarouselClient) Delete(ctx context.Context, id string) error {
	return a.c.delete(ctx, "/carousel/admin/"+id, nil)
}

func offerFields(in remote.OfferInput) map[string]string {
	return map[string]string{
		"offerName": in.OfferName,
		"title":     in.Title,
		"priority":  strconv.Itoa(in.Priority),
		"status":    in.Status,
		"startDate": in.StartDate.Format(time.RFC3339),
		"endDate":   in.EndDate.Format(time.RFC3339),
	}
}
