package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var _ remote.CategoryAPI = (*CategoryClient)(nil)

// CategoryClient adaptador de /categories.
type CategoryClient struct {
	c *Client
}

// NewCategoryClient construye el adaptador.
func NewCategoryClient(c *Client) *CategoryClient {
	return &CategoryClient{c: c}
}

// List trae la colección completa.
func (a *CategoryClient) List(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := a.c.getJSON(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea la categoría (multipart; la imagen es opcional).
func (a *CategoryClient) Create(ctx context.Context, in remote.CategoryInput) (*entity.Category, error) {
	var out entity.Category
	err := a.c.submitMultipart(ctx, http.MethodPost, "/categories",
		categoryFields(in), imageFiles("image", in.ImagePath), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edita la categoría.
func (a *CategoryClient) Update(ctx context.Context, id string, in remote.CategoryInput) (*entity.Category, error) {
	var out entity.Category
	err := a.c.submitMultipart(ctx, http.MethodPut, "/categories/"+id,
		categoryFields(in), imageFiles("image", in.ImagePath), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleActive conmuta el flag en el servidor (verbo DELETE, no elimina).
func (a *CategoryClient) ToggleActive(ctx context.Context, id string) (*remote.ToggleResult, error) {
	var out remote.ToggleResult
	if err := a.c.delete(ctx, "/categories/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func categoryFields(in remote.CategoryInput) map[string]string {
	fields := map[string]string{"name": in.Name}
	if in.IsActive != nil {
		fields["isActive"] = strconv.FormatBool(*in.IsActive)
	}
	return fields
}
