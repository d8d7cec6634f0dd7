package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/application/store"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

func newOrderStore(api *fakeOrderAPI) (*store.OrderStore, *recordingNotifier) {
	notify := &recordingNotifier{}
	return store.NewOrderStore(api, notify, logger.NewNop()), notify
}

func TestOrderStore_SetStatusRechazaEstadoDesconocido(t *testing.T) {
	api := &fakeOrderAPI{}
	s, notify := newOrderStore(api)

	err := s.SetStatus(context.Background(), "or1", entity.OrderStatus("Confirmed"))

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, api.setStatusCalls, "un estado fuera del catálogo nunca toca la red")
	assert.Contains(t, notify.lastError(), "Confirmed")
}

func TestOrderStore_SetStatusReemplazaElPedido(t *testing.T) {
	api := &fakeOrderAPI{
		list: []entity.Order{
			{ID: "or1", Status: entity.OrderPending},
			{ID: "or2", Status: entity.OrderShipped},
		},
		updated: &entity.Order{ID: "or1", Status: entity.OrderProcessing},
	}
	s, notify := newOrderStore(api)
	s.Refresh(context.Background())

	require.NoError(t, s.SetStatus(context.Background(), "or1", entity.OrderProcessing))

	got := s.Orders()
	assert.Equal(t, entity.OrderProcessing, got[0].Status)
	assert.Equal(t, entity.OrderShipped, got[1].Status)
	assert.Contains(t, notify.lastSuccess(), "Estado del pedido actualizado")
}

func TestOrderStore_SetStatusFallidoConservaElEstado(t *testing.T) {
	api := &fakeOrderAPI{
		list:         []entity.Order{{ID: "or1", Status: entity.OrderPending}},
		setStatusErr: &remote.Error{StatusCode: 400, Message: "invalid transition"},
	}
	s, notify := newOrderStore(api)
	s.Refresh(context.Background())

	err := s.SetStatus(context.Background(), "or1", entity.OrderDelivered)

	require.Error(t, err)
	assert.Equal(t, entity.OrderPending, s.Orders()[0].Status)
	assert.Equal(t, "Pedidos: invalid transition", notify.lastError())
}
