package entity

// Subcategory representa una subcategoría del catálogo. Category puede llegar
// poblada o como id plano según el endpoint que la devolvió.
type Subcategory struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category Ref    `json:"category"`
	IsActive bool   `json:"isActive"`
}

// SubcategoriesOf filtra las subcategorías que pertenecen a la categoría dada,
// preservando el orden. Con categoryID vacío devuelve la lista completa (el
// filtro "todas" de los selectores en cascada).
func SubcategoriesOf(subcategories []Subcategory, categoryID string) []Subcategory {
	if categoryID == "" {
		return subcategories
	}
	out := make([]Subcategory, 0, len(subcategories))
	for _, s := range subcategories {
		if s.Category.ID() == categoryID {
			out = append(out, s)
		}
	}
	return out
}
