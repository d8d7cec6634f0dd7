package store_test

import (
	"context"
	"sync"

	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: implementaciones en memoria de los puertos remotos y del
// notificador. Cada fake registra las llamadas recibidas para poder afirmar
// sobre el protocolo (qué se mandó al backend y qué notificación vio el
// usuario).
// ──────────────────────────────────────────────────────────────────────────────

// recordingNotifier captura las notificaciones emitidas por un store.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title+": "+message)
}

func (n *recordingNotifier) Error(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, title+": "+message)
}

func (n *recordingNotifier) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

// fakeCategoryAPI puerto de categorías programable por campo.
type fakeCategoryAPI struct {
	list      []entity.Category
	listErr   error
	created   *entity.Category
	createErr error
	updated   *entity.Category
	updateErr error
	toggle    *remote.ToggleResult
	toggleErr error

	listCalls   int
	toggleCalls []string
	lastInput   remote.CategoryInput
}

func (f *fakeCategoryAPI) List(context.Context) ([]entity.Category, error) {
	f.listCalls++
	return f.list, f.listErr
}

func (f *fakeCategoryAPI) Create(_ context.Context, in remote.CategoryInput) (*entity.Category, error) {
	f.lastInput = in
	return f.created, f.createErr
}

func (f *fakeCategoryAPI) Update(_ context.Context, _ string, in remote.CategoryInput) (*entity.Category, error) {
	f.lastInput = in
	return f.updated, f.updateErr
}

func (f *fakeCategoryAPI) ToggleActive(_ context.Context, id string) (*remote.ToggleResult, error) {
	f.toggleCalls = append(f.toggleCalls, id)
	return f.toggle, f.toggleErr
}

// fakeSubcategoryAPI puerto de subcategorías programable por campo.
type fakeSubcategoryAPI struct {
	list      []entity.Subcategory
	listErr   error
	created   *entity.Subcategory
	createErr error
	updated   *entity.Subcategory
	updateErr error
	toggle    *remote.ToggleResult
	toggleErr error

	listCalls int
}

func (f *fakeSubcategoryAPI) List(context.Context) ([]entity.Subcategory, error) {
	f.listCalls++
	return f.list, f.listErr
}

func (f *fakeSubcategoryAPI) Create(context.Context, remote.SubcategoryInput) (*entity.Subcategory, error) {
	return f.created, f.createErr
}

func (f *fakeSubcategoryAPI) Update(context.Context, string, remote.SubcategoryInput) (*entity.Subcategory, error) {
	return f.updated, f.updateErr
}

func (f *fakeSubcategoryAPI) ToggleActive(context.Context, string) (*remote.ToggleResult, error) {
	return f.toggle, f.toggleErr
}

// fakeProductAPI puerto de productos programable por campo.
type fakeProductAPI struct {
	list      []entity.Product
	listErr   error
	created   *entity.Product
	createErr error
	updated   *entity.Product
	updateErr error
	toggle    *remote.ToggleResult
	toggleErr error
}

func (f *fakeProductAPI) List(context.Context) ([]entity.Product, error) {
	return f.list, f.listErr
}

func (f *fakeProductAPI) Create(context.Context, remote.ProductInput) (*entity.Product, error) {
	return f.created, f.createErr
}

func (f *fakeProductAPI) Update(context.Context, string, remote.ProductInput) (*entity.Product, error) {
	return f.updated, f.updateErr
}

func (f *fakeProductAPI) ToggleActive(context.Context, string) (*remote.ToggleResult, error) {
	return f.toggle, f.toggleErr
}

// fakeCarouselAPI puerto del carrusel programable por campo.
type fakeCarouselAPI struct {
	list      []entity.CarouselOffer
	listErr   error
	created   *entity.CarouselOffer
	createErr error
	updated   *entity.CarouselOffer
	updateErr error
	deleteErr error

	deleted []string
}

func (f *fakeCarouselAPI) List(context.Context) ([]entity.CarouselOffer, error) {
	return f.list, f.listErr
}

func (f *fakeCarouselAPI) Create(context.Context, remote.OfferInput) (*entity.CarouselOffer, error) {
	return f.created, f.createErr
}

func (f *fakeCarouselAPI) Update(context.Context, string, remote.OfferInput) (*entity.CarouselOffer, error) {
	return f.updated, f.updateErr
}

func (f *fakeCarouselAPI) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

// fakeOrderAPI puerto de pedidos programable por campo.
type fakeOrderAPI struct {
	list         []entity.Order
	listErr      error
	updated      *entity.Order
	setStatusErr error

	setStatusCalls int
}

func (f *fakeOrderAPI) List(context.Context) ([]entity.Order, error) {
	return f.list, f.listErr
}

func (f *fakeOrderAPI) SetStatus(context.Context, string, entity.OrderStatus) (*entity.Order, error) {
	f.setStatusCalls++
	return f.updated, f.setStatusErr
}

// fakeAuthAPI puerto de autenticación programable por campo.
type fakeAuthAPI struct {
	session     *remote.Session
	loginErr    error
	passwordErr error
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (*remote.Session, error) {
	return f.session, f.loginErr
}

func (f *fakeAuthAPI) ChangePassword(context.Context, string, string) error {
	return f.passwordErr
}

// memoryVault vault de sesión en memoria.
type memoryVault struct {
	session *remote.Session
	saveErr error
	loadErr error
}

func (v *memoryVault) Save(s remote.Session) error {
	if v.saveErr != nil {
		return v.saveErr
	}
	v.session = &s
	return nil
}

func (v *memoryVault) Load() (*remote.Session, error) {
	if v.loadErr != nil {
		return nil, v.loadErr
	}
	if v.session == nil {
		return nil, domain.ErrNoSession
	}
	return v.session, nil
}

func (v *memoryVault) Clear() error {
	v.session = nil
	return nil
}
