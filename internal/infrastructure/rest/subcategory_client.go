package rest

import (
	"context"
	"net/http"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var _ remote.SubcategoryAPI = (*SubcategoryClient)(nil)

// SubcategoryClient adaptador de /subcategories. Es la única colección de
// catálogo sin imagen: crea y edita con JSON plano.
type SubcategoryClient struct {
	c *Client
}

// NewSubcategoryClient construye el adaptador.
func NewSubcategoryClient(c *Client) *SubcategoryClient {
	return &SubcategoryClient{c: c}
}

// List trae la colección completa.
func (a *SubcategoryClient) List(ctx context.Context) ([]entity.Subcategory, error) {
	var out []entity.Subcategory
	if err := a.c.getJSON(ctx, "/subcategories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea la subcategoría.
func (a *SubcategoryClient) Create(ctx context.Context, in remote.SubcategoryInput) (*entity.Subcategory, error) {
	var out entity.Subcategory
	if err := a.c.sendJSON(ctx, http.MethodPost, "/subcategories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edita la subcategoría.
func (a *SubcategoryClient) Update(ctx context.Context, id string, in remote.SubcategoryInput) (*entity.Subcategory, error) {
	var out entity.Subcategory
	if err := a.c.sendJSON(ctx, http.MethodPut, "/subcategories/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleActive conmuta el flag en el servidor (verbo DELETE, no elimina).
func (a *SubcategoryClient) ToggleActive(ctx context.Context, id string) (*remote.ToggleResult, error) {
	var out remote.ToggleResult
	if err := a.c.delete(ctx, "/subcategories/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
