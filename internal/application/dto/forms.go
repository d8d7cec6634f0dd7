// Package dto define los formularios de captura de la consola y sus reglas
// de validación. La consistencia subcategoría↔categoría se valida aquí, al
// capturar el formulario; los stores no la re-verifican.
package dto

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// CategoryForm formulario de alta/edición de categoría.
type CategoryForm struct {
	Name      string `validate:"required,min=2,max=80"`
	IsActive  *bool
	ImagePath string
}

// Validate valida el formulario.
func (f CategoryForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return invalid("categoría: %v", err)
	}
	return nil
}

// Input convierte el formulario al payload remoto.
func (f CategoryForm) Input() remote.CategoryInput {
	return remote.CategoryInput{Name: f.Name, IsActive: f.IsActive, ImagePath: f.ImagePath}
}

// SubcategoryForm formulario de alta/edición de subcategoría.
type SubcategoryForm struct {
	Name       string `validate:"required,min=2,max=80"`
	CategoryID string `validate:"required"`
	IsActive   *bool
}

// Validate valida el formulario; la categoría padre debe existir en la lista
// vigente de categorías.
func (f SubcategoryForm) Validate(categories []entity.Category) error {
	if err := validate.Struct(f); err != nil {
		return invalid("subcategoría: %v", err)
	}
	for _, c := range categories {
		if c.ID == f.CategoryID {
			return nil
		}
	}
	return invalid("subcategoría: la categoría %q no existe", f.CategoryID)
}

// Input convierte el formulario al payload remoto.
func (f SubcategoryForm) Input() remote.SubcategoryInput {
	return remote.SubcategoryInput{Name: f.Name, CategoryID: f.CategoryID, IsActive: f.IsActive}
}

// ProductForm formulario de alta/edición de producto.
type ProductForm struct {
	Name          string `validate:"required,min=2,max=120"`
	Description   string `validate:"max=2000"`
	Price         decimal.Decimal
	Stock         int    `validate:"min=0"`
	CategoryID    string `validate:"required"`
	SubcategoryID string
	ImagePaths    []string
}

// Validate valida el formulario: precio no negativo y, si se eligió
// subcategoría, que pertenezca a la categoría seleccionada.
func (f ProductForm) Validate(subcategories []entity.Subcategory) error {
	if err := validate.Struct(f); err != nil {
		return invalid("producto: %v", err)
	}
	if f.Price.IsNegative() {
		return invalid("producto: el precio no puede ser negativo")
	}
	if f.SubcategoryID == "" {
		return nil
	}
	for _, s := range entity.SubcategoriesOf(subcategories, f.CategoryID) {
		if s.ID == f.SubcategoryID {
			return nil
		}
	}
	return invalid("producto: la subcategoría %q no pertenece a la categoría %q", f.SubcategoryID, f.CategoryID)
}

// Input convierte el formulario al payload remoto.
func (f ProductForm) Input() remote.ProductInput {
	return remote.ProductInput{
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.Price,
		Stock:         f.Stock,
		CategoryID:    f.CategoryID,
		SubcategoryID: f.SubcategoryID,
		ImagePaths:    f.ImagePaths,
	}
}

// OfferForm formulario de alta/edición de oferta del carrusel.
type OfferForm struct {
	OfferName string    `validate:"required,min=2,max=80"`
	Title     string    `validate:"required,min=2,max=120"`
	Priority  int       `validate:"min=0"`
	Status    string    `validate:"oneof=active inactive"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required"`
	ImagePath string
}

// Validate valida el formulario; el rango de vigencia debe ser coherente.
func (f OfferForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return invalid("oferta: %v", err)
	}
	if f.EndDate.Before(f.StartDate) {
		return invalid("oferta: la fecha de fin es anterior a la de inicio")
	}
	return nil
}

// Input convierte el formulario al payload remoto.
func (f OfferForm) Input() remote.OfferInput {
	return remote.OfferInput{
		OfferName: f.OfferName,
		Title:     f.Title,
		Priority:  f.Priority,
		Status:    f.Status,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		ImagePath: f.ImagePath,
	}
}
