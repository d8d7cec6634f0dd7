package remote

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payloads de escritura hacia el backend. Los *Path son rutas locales a las
// imágenes que se adjuntan como multipart; vacío = sin archivo. El backend
// resuelve la subida al CDN.

// CategoryInput payload de creación/edición de categoría (multipart).
type CategoryInput struct {
	Name      string
	IsActive  *bool // nil = no enviar el campo
	ImagePath string
}

// SubcategoryInput payload de creación/edición de subcategoría (JSON plano,
// es la única colección de catálogo sin imagen).
type SubcategoryInput struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
	IsActive   *bool  `json:"isActive,omitempty"`
}

// ProductInput payload de creación/edición de producto (multipart).
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Stock         int
	CategoryID    string
	SubcategoryID string
	ImagePaths    []string
}

// OfferInput payload de creación/edición de oferta del carrusel (multipart).
type OfferInput struct {
	OfferName string
	Title     string
	Priority  int
	Status    string // active | inactive
	StartDate time.Time
	EndDate   time.Time
	ImagePath string
}
