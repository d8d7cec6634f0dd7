package store

import (
	"context"
	"sync"

	"github.com/jhoicas/comercio-admin/internal/application/ports"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// OrderStore dueño de la lista de pedidos. Los pedidos no se crean ni se
// eliminan desde la consola: solo se listan y se les cambia el estado.
type OrderStore struct {
	api    remote.OrderAPI
	notify ports.Notifier
	log    *logger.Logger

	mu      sync.Mutex
	orders  []entity.Order
	loading bool
}

// NewOrderStore construye el store.
func NewOrderStore(api remote.OrderAPI, notify ports.Notifier, log *logger.Logger) *OrderStore {
	return &OrderStore{api: api, notify: notify, log: log}
}

// Orders devuelve una copia de la lista vigente.
func (s *OrderStore) Orders() []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// IsLoading indica si hay una operación en curso.
func (s *OrderStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *OrderStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Refresh trae la colección completa y reemplaza la lista local.
func (s *OrderStore) Refresh(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.api.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listar pedidos")
		s.notify.Error("Pedidos", remote.ErrorMessage(err, "No se pudieron cargar los pedidos"))
		return
	}
	s.mu.Lock()
	s.orders = list
	s.mu.Unlock()
}

// SetStatus cambia el estado del pedido. Solo se valida la pertenencia al
// conjunto enumerado; la legalidad de la transición la decide el backend.
func (s *OrderStore) SetStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if !status.IsValid() {
		err := domain.ErrInvalidInput
		s.notify.Error("Pedidos", "Estado de pedido desconocido: "+string(status))
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.SetStatus(ctx, id, status)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("actualizar estado del pedido")
		s.notify.Error("Pedidos", remote.ErrorMessage(err, "No se pudo actualizar el pedido"))
		return err
	}
	s.mu.Lock()
	replaceByID(s.orders, id, func(o entity.Order) string { return o.ID }, *updated)
	s.mu.Unlock()
	s.notify.Success("Pedidos", "Estado del pedido actualizado")
	return nil
}
