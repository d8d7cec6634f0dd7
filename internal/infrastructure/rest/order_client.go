package rest

import (
	"context"
	"net/http"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var _ remote.OrderAPI = (*OrderClient)(nil)

// OrderClient adaptador de /orders.
type OrderClient struct {
	c *Client
}

// NewOrderClient construye el adaptador.
func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

// List trae la colección completa.
func (a *OrderClient) List(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := a.c.getJSON(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus cambia el estado del pedido y devuelve el pedido actualizado.
func (a *OrderClient) SetStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	payload := struct {
		Status entity.OrderStatus `json:"status"`
	}{Status: status}

	var out entity.Order
	if err := a.c.sendJSON(ctx, http.MethodPut, "/orders/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
