package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var _ remote.ProductAPI = (*ProductClient)(nil)

// ProductClient adaptador de /products.
type ProductClient struct {
	c *Client
}

// NewProductClient construye el adaptador.
func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

// List trae la colección completa.
func (a *ProductClient) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := a.c.getJSON(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea el producto (multipart; admite varias imágenes).
func (a *ProductClient) Create(ctx context.Context, in remote.ProductInput) (*entity.Product, error) {
	var out entity.Product
	err := a.c.submitMultipart(ctx, http.MethodPost, "/products",
		productFields(in), productFiles(in), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edita el producto.
func (a *ProductClient) Update(ctx context.Context, id string, in remote.ProductInput) (*entity.Product, error) {
	var out entity.Product
	err := a.c.submitMultipart(ctx, http.MethodPut, "/products/"+id,
		productFields(in), productFiles(in), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleActive conmuta el flag en el servidor (verbo DELETE, no elimina).
func (a *ProductClient) ToggleActive(ctx context.Context, id string) (*remote.ToggleResult, error) {
	var out remote.ToggleResult
	if err := a.c.delete(ctx, "/products/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func productFields(in remote.ProductInput) map[string]string {
	fields := map[string]string{
		"name":     in.Name,
		"price":    in.Price.String(),
		"stock":    strconv.Itoa(in.Stock),
		"category": in.CategoryID,
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.SubcategoryID != "" {
		fields["subcategory"] = in.SubcategoryID
	}
	return fields
}

func productFiles(in remote.ProductInput) []formFile {
	files := make([]formFile, 0, len(in.ImagePaths))
	for _, p := range in.ImagePaths {
		files = append(files, formFile{Field: "images", Path: p})
	}
	return files
}
