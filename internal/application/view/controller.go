package view

// Controller estado de búsqueda/filtros/página de una pantalla de listado.
// Q es el tipo de query de la pantalla (comparable para detectar cambios):
// cualquier cambio de filtro o búsqueda regresa a la página 1, igual que el
// listado al que reemplaza. apply liga el controller con la Apply de su query.
type Controller[T any, Q comparable] struct {
	apply    func(Q, []T) []T
	query    Q
	page     int
	pageSize int
}

// NewController construye el controller de una pantalla. pageSize <= 0 usa
// DefaultPageSize.
func NewController[T any, Q comparable](apply func(Q, []T) []T, pageSize int) *Controller[T, Q] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller[T, Q]{apply: apply, page: 1, pageSize: pageSize}
}

// Query devuelve la query vigente.
func (c *Controller[T, Q]) Query() Q { return c.query }

// Page devuelve la página vigente (1-based).
func (c *Controller[T, Q]) Page() int { return c.page }

// SetQuery cambia los filtros. Si la query difiere de la vigente la página
// vuelve a 1.
func (c *Controller[T, Q]) SetQuery(q Q) {
	if q != c.query {
		c.query = q
		c.page = 1
	}
}

// SetPage navega a la página dada; Build la ancla al rango válido.
func (c *Controller[T, Q]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.page = page
}

// Build proyecta la lista del store con los filtros y la página vigentes, y
// sincroniza la página con la que realmente se sirvió.
func (c *Controller[T, Q]) Build(items []T) Page[T] {
	filtered := c.apply(c.query, items)
	page := Paginate(filtered, c.page, c.pageSize)
	c.page = page.Number
	return page
}

// Filtered devuelve la proyección filtrada completa sin paginar; es la lista
// que consume la exportación a PDF.
func (c *Controller[T, Q]) Filtered(items []T) []T {
	return c.apply(c.query, items)
}
