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

// CategoryStore dueño de la lista de categorías.
type CategoryStore struct {
	api    remote.CategoryAPI
	notify ports.Notifier
	log    *logger.Logger

	mu         sync.Mutex
	categories []entity.Category
	loading    bool
}

// NewCategoryStore construye el store.
func NewCategoryStore(api remote.CategoryAPI, notify ports.Notifier, log *logger.Logger) *CategoryStore {
	return &CategoryStore{api: api, notify: notify, log: log}
}

// Categories devuelve una copia de la lista vigente.
func (s *CategoryStore) Categories() []entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// IsLoading indica si hay una operación en curso.
func (s *CategoryStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CategoryStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Refresh trae la colección completa y reemplaza la lista local. Si falla,
// la lista queda intacta y el error ya fue notificado.
func (s *CategoryStore) Refresh(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.api.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listar categorías")
		s.notify.Error("Categorías", remote.ErrorMessage(err, "No se pudieron cargar las categorías"))
		return
	}
	s.mu.Lock()
	s.categories = list
	s.mu.Unlock()
}

// Create valida el formulario, crea la categoría y agrega al final de la
// lista la entidad que devolvió el servidor.
func (s *CategoryStore) Create(ctx context.Context, form dto.CategoryForm) error {
	if err := form.Validate(); err != nil {
		s.notify.Error("Categorías", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.api.Create(ctx, form.Input())
	if err != nil {
		s.log.Error().Err(err).Msg("crear categoría")
		s.notify.Error("Categorías", remote.ErrorMessage(err, "No se pudo crear la categoría"))
		return err
	}
	s.mu.Lock()
	s.categories = append(s.categories, *created)
	s.mu.Unlock()
	s.notify.Success("Categorías", "Categoría creada")
	return nil
}

// Update edita la categoría y reemplaza la fila local por la representación
// del servidor.
func (s *CategoryStore) Update(ctx context.Context, id string, form dto.CategoryForm) error {
	if err := form.Validate(); err != nil {
		s.notify.Error("Categorías", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.Update(ctx, id, form.Input())
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar categoría")
		s.notify.Error("Categorías", remote.ErrorMessage(err, "No se pudo actualizar la categoría"))
		return err
	}
	s.mu.Lock()
	replaceByID(s.categories, id, func(c entity.Category) string { return c.ID }, *updated)
	s.mu.Unlock()
	s.notify.Success("Categorías", "Categoría actualizada")
	return nil
}

// ToggleActive pide al backend conmutar el flag (el DELETE no elimina) y
// aplica exactamente el flag devuelto; la cascada sobre subcategorías y
// productos corre en el servidor y se ve en el próximo Refresh de esos
// stores.
func (s *CategoryStore) ToggleActive(ctx context.Context, id string) {
	s.setLoading(true)
	defer s.setLoading(false)

	res, err := s.api.ToggleActive(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("conmutar categoría")
		s.notify.Error("Categorías", remote.ErrorMessage(err, "No se pudo cambiar el estado de la categoría"))
		return
	}
	s.mu.Lock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories[i].IsActive = res.IsActive
		}
	}
	s.mu.Unlock()
	s.notify.Success("Categorías", res.Message)
}
