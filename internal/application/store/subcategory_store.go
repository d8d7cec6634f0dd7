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

// SubcategoryStore dueño de la lista de subcategorías. Las validaciones de
// formulario necesitan la lista de categorías vigente; se pasa por parámetro
// para no compartir estado entre stores.
type SubcategoryStore struct {
	api    remote.SubcategoryAPI
	notify ports.Notifier
	log    *logger.Logger

	mu            sync.Mutex
	subcategories []entity.Subcategory
	loading       bool
}

// NewSubcategoryStore construye el store.
func NewSubcategoryStore(api remote.SubcategoryAPI, notify ports.Notifier, log *logger.Logger) *SubcategoryStore {
	return &SubcategoryStore{api: api, notify: notify, log: log}
}

// Subcategories devuelve una copia de la lista vigente.
func (s *SubcategoryStore) Subcategories() []entity.Subcategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Subcategory, len(s.subcategories))
	copy(out, s.subcategories)
	return out
}

// IsLoading indica si hay una operación en curso.
func (s *SubcategoryStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SubcategoryStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Refresh trae la colección completa y reemplaza la lista local.
func (s *SubcategoryStore) Refresh(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.api.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listar subcategorías")
		s.notify.Error("Subcategorías", remote.ErrorMessage(err, "No se pudieron cargar las subcategorías"))
		return
	}
	s.mu.Lock()
	s.subcategories = list
	s.mu.Unlock()
}

// Create valida contra las categorías vigentes, crea la subcategoría y
// agrega la entidad devuelta por el servidor.
func (s *SubcategoryStore) Create(ctx context.Context, form dto.SubcategoryForm, categories []entity.Category) error {
	if err := form.Validate(categories); err != nil {
		s.notify.Error("Subcategorías", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.api.Create(ctx, form.Input())
	if err != nil {
		s.log.Error().Err(err).Msg("crear subcategoría")
		s.notify.Error("Subcategorías", remote.ErrorMessage(err, "No se pudo crear la subcategoría"))
		return err
	}
	s.mu.Lock()
	s.subcategories = append(s.subcategories, *created)
	s.mu.Unlock()
	s.notify.Success("Subcategorías", "Subcategoría creada")
	return nil
}

// Update edita la subcategoría. El PUT no siempre devuelve la categoría
// padre poblada, así que tras aplicar la respuesta se re-sincroniza la lista
// completa para reparar la referencia desnormalizada.
func (s *SubcategoryStore) Update(ctx context.Context, id string, form dto.SubcategoryForm, categories []entity.Category) error {
	if err := form.Validate(categories); err != nil {
		s.notify.Error("Subcategorías", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.Update(ctx, id, form.Input())
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar subcategoría")
		s.notify.Error("Subcategorías", remote.ErrorMessage(err, "No se pudo actualizar la subcategoría"))
		return err
	}
	s.mu.Lock()
	replaceByID(s.subcategories, id, func(sc entity.Subcategory) string { return sc.ID }, *updated)
	s.mu.Unlock()

	if list, err := s.api.List(ctx); err == nil {
		s.mu.Lock()
		s.subcategories = list
		s.mu.Unlock()
	} else {
		// La edición ya quedó aplicada; solo falló la re-sincronización.
		s.log.Warn().Err(err).Msg("re-sincronizar subcategorías tras editar")
	}
	s.notify.Success("Subcategorías", "Subcategoría actualizada")
	return nil
}

// ToggleActive pide al backend conmutar el flag y aplica exactamente el flag
// devuelto.
func (s *SubcategoryStore) ToggleActive(ctx context.Context, id string) {
	s.setLoading(true)
	defer s.setLoading(false)

	res, err := s.api.ToggleActive(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("conmutar subcategoría")
		s.notify.Error("Subcategorías", remote.ErrorMessage(err, "No se pudo cambiar el estado de la subcategoría"))
		return
	}
	s.mu.Lock()
	for i := range s.subcategories {
		if s.subcategories[i].ID == id {
			s.subcategories[i].IsActive = res.IsActive
		}
	}
	s.mu.Unlock()
	s.notify.Success("Subcategorías", res.Message)
}
