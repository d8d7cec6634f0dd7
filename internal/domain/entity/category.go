package entity

// Image referencia a una imagen subida al CDN del backend.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Category representa una categoría del catálogo. Nunca se elimina: el
// backend conmuta IsActive (ver ToggleActive) y desactiva en cascada sus
// subcategorías y productos.
type Category struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Image    Image  `json:"image"`
	IsActive bool   `json:"isActive"`
}

// CategoryName resuelve el nombre de la categoría referenciada por ref
// buscando en la lista dada cuando la API devolvió un id plano.
func CategoryName(categories []Category, ref Ref) string {
	return ref.DisplayName(func(id string) (string, bool) {
		for _, c := range categories {
			if c.ID == id {
				return c.Name, true
			}
		}
		return "", false
	})
}
