package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Category y Subcategory llegan
// pobladas o como id plano; la subcategoría, cuando existe, debe pertenecer a
// la categoría referenciada (se valida al capturar el formulario, no aquí).
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    Ref             `json:"category"`
	Subcategory Ref             `json:"subcategory"`
	Images      []Image         `json:"images"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}
