package view

import "github.com/jhoicas/comercio-admin/internal/domain/entity"

// Queries por pantalla: cada una es el conjunto de filtros que expone su
// listado. Apply devuelve la lista filtrada (sin paginar, es la que consume
// también la exportación a PDF).

// CategoryQuery filtros del listado de categorías.
type CategoryQuery struct {
	Search string
	Status Status
}

// Apply filtra la lista de categorías.
func (q CategoryQuery) Apply(categories []entity.Category) []entity.Category {
	return Filter(categories,
		func(c entity.Category) bool { return matchesSearch(c.Name, q.Search) },
		func(c entity.Category) bool { return q.Status.Matches(c.IsActive) },
	)
}

// SubcategoryQuery filtros del listado de subcategorías; CategoryID vacío
// desactiva el filtro por categoría padre.
type SubcategoryQuery struct {
	Search     string
	Status     Status
	CategoryID string
}

// Apply filtra la lista de subcategorías. La referencia al padre puede venir
// poblada o como id plano; se resuelve antes de comparar.
func (q SubcategoryQuery) Apply(subcategories []entity.Subcategory) []entity.Subcategory {
	return Filter(subcategories,
		func(s entity.Subcategory) bool { return matchesSearch(s.Name, q.Search) },
		func(s entity.Subcategory) bool { return q.Status.Matches(s.IsActive) },
		func(s entity.Subcategory) bool {
			return q.CategoryID == "" || s.Category.ID() == q.CategoryID
		},
	)
}

// ProductQuery filtros del listado de productos; los ids vacíos desactivan
// su filtro.
type ProductQuery struct {
	Search        string
	Status        Status
	CategoryID    string
	SubcategoryID string
}

// Apply filtra la lista de productos.
func (q ProductQuery) Apply(products []entity.Product) []entity.Product {
	return Filter(products,
		func(p entity.Product) bool { return matchesSearch(p.Name, q.Search) },
		func(p entity.Product) bool { return q.Status.Matches(p.IsActive) },
		func(p entity.Product) bool {
			return q.CategoryID == "" || p.Category.ID() == q.CategoryID
		},
		func(p entity.Product) bool {
			return q.SubcategoryID == "" || p.Subcategory.ID() == q.SubcategoryID
		},
	)
}

// OfferQuery filtros del listado del carrusel.
type OfferQuery struct {
	Search string
	Status Status
}

// Apply filtra la lista de ofertas; la búsqueda corre sobre el nombre de la
// oferta y su título.
func (q OfferQuery) Apply(offers []entity.CarouselOffer) []entity.CarouselOffer {
	return Filter(offers,
		func(o entity.CarouselOffer) bool {
			return matchesSearch(o.OfferName, q.Search) || matchesSearch(o.Title, q.Search)
		},
		func(o entity.CarouselOffer) bool { return q.Status.Matches(o.IsActive()) },
	)
}

// OrderQuery filtros del listado de pedidos; Status vacío acepta todos.
type OrderQuery struct {
	Search string // contra el nombre del destinatario del envío
	Status entity.OrderStatus
}

// Apply filtra la lista de pedidos.
func (q OrderQuery) Apply(orders []entity.Order) []entity.Order {
	return Filter(orders,
		func(o entity.Order) bool { return matchesSearch(o.ShippingAddress.FullName, q.Search) },
		func(o entity.Order) bool { return q.Status == "" || o.Status == q.Status },
	)
}
