package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido dentro de su progresión lineal.
type OrderStatus string

// Progresión de estados de un pedido. Cancelled es terminal y alcanzable
// desde cualquier estado no terminal. El cliente solo valida pertenencia al
// conjunto; la legalidad de la transición la decide el backend.
const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderPacked     OrderStatus = "Packed"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses devuelve los estados en el orden de la progresión.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderPending, OrderProcessing, OrderPacked,
		OrderShipped, OrderDelivered, OrderCancelled,
	}
}

// IsValid indica si el estado pertenece al conjunto enumerado.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderPacked, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// OrderItem línea de un pedido; Product referencia al producto original, el
// nombre y precio son snapshot al momento de la compra.
type OrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Product  Ref             `json:"product"`
}

// ShippingAddress snapshot de la dirección de entrega del pedido.
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// Order representa un pedido del cliente.
type Order struct {
	ID              string          `json:"_id"`
	User            Ref             `json:"user"`
	Items           []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	IsPaid          bool            `json:"isPaid"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	IsDelivered     bool            `json:"isDelivered"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
