// Package remote define los puertos hacia el backend REST (DIP): los stores
// de la aplicación dependen de estas interfaces, nunca del cliente HTTP.
package remote

import (
	"context"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
)

// ToggleResult respuesta del endpoint DELETE de catálogo: el verbo no elimina,
// conmuta isActive en el servidor (y dispara la cascada allá). El cliente debe
// aplicar exactamente el flag devuelto, nunca la negación local.
type ToggleResult struct {
	IsActive bool   `json:"isActive"`
	Message  string `json:"message"`
}

// Session token de sesión más el usuario autenticado.
type Session struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// CategoryAPI operaciones remotas sobre /categories.
type CategoryAPI interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, in CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, in CategoryInput) (*entity.Category, error)
	ToggleActive(ctx context.Context, id string) (*ToggleResult, error)
}

// SubcategoryAPI operaciones remotas sobre /subcategories.
type SubcategoryAPI interface {
	List(ctx context.Context) ([]entity.Subcategory, error)
	Create(ctx context.Context, in SubcategoryInput) (*entity.Subcategory, error)
	Update(ctx context.Context, id string, in SubcategoryInput) (*entity.Subcategory, error)
	ToggleActive(ctx context.Context, id string) (*ToggleResult, error)
}

// ProductAPI operaciones remotas sobre /products.
type ProductAPI interface {
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, in ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error)
	ToggleActive(ctx context.Context, id string) (*ToggleResult, error)
}

// CarouselAPI operaciones remotas sobre /carousel/admin. Aquí el DELETE sí
// elimina la oferta; el carrusel no participa del protocolo de toggle.
type CarouselAPI interface {
	List(ctx context.Context) ([]entity.CarouselOffer, error)
	Create(ctx context.Context, in OfferInput) (*entity.CarouselOffer, error)
	Update(ctx context.Context, id string, in OfferInput) (*entity.CarouselOffer, error)
	Delete(ctx context.Context, id string) error
}

// OrderAPI operaciones remotas sobre /orders.
type OrderAPI interface {
	List(ctx context.Context) ([]entity.Order, error)
	SetStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)
}

// AuthAPI operaciones remotas de autenticación.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	ChangePassword(ctx context.Context, current, updated string) error
}
