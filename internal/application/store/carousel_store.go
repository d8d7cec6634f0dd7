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

// CarouselStore dueño de la lista de ofertas del carrusel. A diferencia del
// catálogo, Delete sí elimina la oferta (el carrusel no usa el protocolo de
// toggle ni tiene dependientes en cascada).
type CarouselStore struct {
	api    remote.CarouselAPI
	notify ports.Notifier
	log    *logger.Logger

	mu      sync.Mutex
	offers  []entity.CarouselOffer
	loading bool
}

// NewCarouselStore construye el store.
func NewCarouselStore(api remote.CarouselAPI, notify ports.Notifier, log *logger.Logger) *CarouselStore {
	return &CarouselStore{api: api, notify: notify, log: log}
}

// Offers devuelve una copia de la lista vigente.
func (s *CarouselStore) Offers() []entity.CarouselOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CarouselOffer, len(s.offers))
	copy(out, s.offers)
	return out
}

// IsLoading indica si hay una operación en curso.
func (s *CarouselStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CarouselStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Refresh trae la colección completa y reemplaza la lista local.
func (s *CarouselStore) Refresh(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.api.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listar ofertas del carrusel")
		s.notify.Error("Carrusel", remote.ErrorMessage(err, "No se pudieron cargar las ofertas"))
		return
	}
	s.mu.Lock()
	s.offers = list
	s.mu.Unlock()
}

// Create valida el formulario, crea la oferta y agrega la entidad devuelta
// por el servidor.
func (s *CarouselStore) Create(ctx context.Context, form dto.OfferForm) error {
	if err := form.Validate(); err != nil {
		s.notify.Error("Carrusel", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.api.Create(ctx, form.Input())
	if err != nil {
		s.log.Error().Err(err).Msg("crear oferta")
		s.notify.Error("Carrusel", remote.ErrorMessage(err, "No se pudo crear la oferta"))
		return err
	}
	s.mu.Lock()
	s.offers = append(s.offers, *created)
	s.mu.Unlock()
	s.notify.Success("Carrusel", "Oferta creada")
	return nil
}

// Update edita la oferta y reemplaza la fila local por la representación del
// servidor.
func (s *CarouselStore) Update(ctx context.Context, id string, form dto.OfferForm) error {
	if err := form.Validate(); err != nil {
		s.notify.Error("Carrusel", err.Error())
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.Update(ctx, id, form.Input())
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar oferta")
		s.notify.Error("Carrusel", remote.ErrorMessage(err, "No se pudo actualizar la oferta"))
		return err
	}
	s.mu.Lock()
	replaceByID(s.offers, id, func(o entity.CarouselOffer) string { return o.ID }, *updated)
	s.mu.Unlock()
	s.notify.Success("Carrusel", "Oferta actualizada")
	return nil
}

// Delete elimina la oferta en el servidor y la retira de la lista local.
func (s *CarouselStore) Delete(ctx context.Context, id string) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("eliminar oferta")
		s.notify.Error("Carrusel", remote.ErrorMessage(err, "No se pudo eliminar la oferta"))
		return
	}
	s.mu.Lock()
	kept := s.offers[:0]
	for _, o := range s.offers {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.offers = kept
	s.mu.Unlock()
	s.notify.Success("Carrusel", "Oferta eliminada")
}
