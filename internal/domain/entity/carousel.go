package entity

import "time"

// Estados de una oferta del carrusel. A diferencia del catálogo, el backend
// serializa el estado como string y el DELETE sí elimina la oferta.
const (
	OfferStatusActive   = "active"
	OfferStatusInactive = "inactive"
)

// CarouselOffer representa una oferta promocional del carrusel de la tienda.
// Priority menor = mayor precedencia de despliegue.
type CarouselOffer struct {
	ID        string    `json:"_id"`
	OfferName string    `json:"offerName"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Priority  int       `json:"priority"`
	Status    string    `json:"status"` // active | inactive
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive indica si la oferta está activa.
func (o CarouselOffer) IsActive() bool { return o.Status == OfferStatusActive }
