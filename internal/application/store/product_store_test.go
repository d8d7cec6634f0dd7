package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/application/dto"
	"github.com/jhoicas/comercio-admin/internal/application/store"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

var testSubcategories = []entity.Subcategory{
	{ID: "s1", Name: "Sneakers", Category: entity.RefByID("c1"), IsActive: true},
	{ID: "s2", Name: "Totes", Category: entity.RefByID("c2"), IsActive: true},
}

func newProductStore(api *fakeProductAPI) (*store.ProductStore, *recordingNotifier) {
	notify := &recordingNotifier{}
	return store.NewProductStore(api, notify, logger.NewNop()), notify
}

func validProductForm() dto.ProductForm {
	return dto.ProductForm{
		Name:          "Air Max",
		Price:         decimal.NewFromInt(120),
		Stock:         10,
		CategoryID:    "c1",
		SubcategoryID: "s1",
	}
}

func TestProductStore_CreateAgregaLaRespuestaDelServidor(t *testing.T) {
	api := &fakeProductAPI{
		created: &entity.Product{ID: "p1", Name: "Air Max", IsActive: true},
	}
	s, notify := newProductStore(api)

	require.NoError(t, s.Create(context.Background(), validProductForm(), testSubcategories))

	got := s.Products()
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.Contains(t, notify.lastSuccess(), "Producto creado")
}

// TestProductStore_CreateSubcategoriaAjenaFalla la subcategoría elegida debe
// pertenecer a la categoría elegida; s2 cuelga de c2.
func TestProductStore_CreateSubcategoriaAjenaFalla(t *testing.T) {
	api := &fakeProductAPI{}
	s, notify := newProductStore(api)

	form := validProductForm()
	form.SubcategoryID = "s2"

	err := s.Create(context.Background(), form, testSubcategories)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, notify.lastError(), "s2")
}

func TestProductStore_CreatePrecioNegativoFalla(t *testing.T) {
	s, _ := newProductStore(&fakeProductAPI{})

	form := validProductForm()
	form.Price = decimal.NewFromInt(-1)

	assert.ErrorIs(t, s.Create(context.Background(), form, testSubcategories), domain.ErrInvalidInput)
}

func TestProductStore_ToggleAplicaElFlagDelServidor(t *testing.T) {
	api := &fakeProductAPI{
		list:   []entity.Product{{ID: "p1", Name: "Air Max", IsActive: false}},
		toggle: &remote.ToggleResult{IsActive: false, Message: "Product already disabled"},
	}
	s, notify := newProductStore(api)
	s.Refresh(context.Background())

	s.ToggleActive(context.Background(), "p1")

	assert.False(t, s.Products()[0].IsActive, "se aplica el flag devuelto, no la negación")
	assert.Contains(t, notify.lastSuccess(), "Product already disabled")
}
