package store

import (
	"context"
	"sync"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/ports"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// ProductStore dueño de la lista de productos.
type ProductStore struct {
	api    remote.ProductAPI
	notify ports.Notifier
	log    *logger.Logger

	mu       sync.Mutex
	products []entity.Product
	loading  bool
}

// NewProductStore construye el store.
func NewProductStore(api remote.ProductAPI, notify ports.Notifier, log *logger.Logger) *ProductStore {
	return &ProductStore{api: api, notify: notify, log: log}
}

// Products devuelve una copia de la lista vigente.
func (s *ProductStore) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// IsLoading indica si hay una operación en curso.
func (s *ProductStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ProductStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Refresh trae la colección completa y reemplaza la lista local.
func (s *ProductStore) Refresh(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.api.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listar productos")
		s.notify.Error("Productos", remote.ErrorMessage(err, "No se pudieron cargar los productos"))
		return
	}
	s.mu.Lock()
	s.products = list
	s.mu.Unlock()
}

// Create valida el formulario contra las subcategorías vigentes (la
// subcategoría elegida debe pertenecer a la categoría elegida), crea el
// producto y agrega la entidad devuelta por el servidor.
func (s *ProductStore) Create(ctx context.Context, form dto.ProductForm, subcategories []entity.Subcategory) error {
	if err := form.Validate(subcategories); err != nil {
		s.notify.Error("Productos", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.api.Create(ctx, form.Input())
	if err != nil {
		s.log.Error().Err(err).Msg("crear producto")
		s.notify.Error("Productos", remote.ErrorMessage(err, "No se pudo crear el producto"))
		return err
	}
	s.mu.Lock()
	s.products = append(s.products, *created)
	s.mu.Unlock()
	s.notify.Success("Productos", "Producto creado")
	return nil
}

// Update edita el producto y reemplaza la fila local por la representación
// del servidor.
func (s *ProductStore) Update(ctx context.Context, id string, form dto.ProductForm, subcategories []entity.Subcategory) error {
	if err := form.Validate(subcategories); err != nil {
		s.notify.Error("Productos", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.Update(ctx, id, form.Input())
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar producto")
		s.notify.Error("Productos", remote.ErrorMessage(err, "No se pudo actualizar el producto"))
		return err
	}
	s.mu.Lock()
	replaceByID(s.products, id, func(p entity.Product) string { return p.ID }, *updated)
	s.mu.Unlock()
	s.notify.Success("Productos", "Producto actualizado")
	return nil
}

// ToggleActive pide al backend conmutar el flag y aplica exactamente el flag
// devuelto.
func (s *ProductStore) ToggleActive(ctx context.Context, id string) {
	s.setLoading(true)
	defer s.setLoading(false)

	res, err := s.api.ToggleActive(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("conmutar producto")
		s.notify.Error("Productos", remote.ErrorMessage(err, "No se pudo cambiar el estado del producto"))
		return
	}
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].IsActive = res.IsActive
		}
	}
	s.mu.Unlock()
	s.notify.Success("Productos", res.Message)
}
