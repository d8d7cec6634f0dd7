package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/application/store"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

func newAuthStore(api *fakeAuthAPI, vault *memoryVault) (*store.AuthStore, *recordingNotifier) {
	notify := &recordingNotifier{}
	return store.NewAuthStore(api, vault, notify, logger.NewNop()), notify
}

// signedToken firma un JWT de prueba con el exp dado. El store solo inspecciona
// los claims sin verificar la firma, así que cualquier clave sirve.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAuthStore_LoginPersisteLaSesion(t *testing.T) {
	session := &remote.Session{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: "admin"},
	}
	vault := &memoryVault{}
	s, notify := newAuthStore(&fakeAuthAPI{session: session}, vault)

	require.NoError(t, s.Login(context.Background(), "ana@example.com", "secret"))

	assert.Equal(t, session.Token, s.Token())
	require.NotNil(t, vault.session, "la sesión debe quedar en el vault")
	assert.Equal(t, "Ana", s.User().Name)
	assert.Contains(t, notify.lastSuccess(), "Bienvenido, Ana")
}

func TestAuthStore_LoginFallidoNoDejaSesion(t *testing.T) {
	vault := &memoryVault{}
	api := &fakeAuthAPI{loginErr: &remote.Error{StatusCode: 401, Message: "Invalid credentials"}}
	s, notify := newAuthStore(api, vault)

	err := s.Login(context.Background(), "ana@example.com", "wrong")

	require.Error(t, err)
	assert.Empty(t, s.Token())
	assert.Nil(t, vault.session)
	assert.Equal(t, "Sesión: Invalid credentials", notify.lastError())
}

func TestAuthStore_LoadSessionRestauraElToken(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	vault := &memoryVault{session: &remote.Session{Token: token, User: entity.User{Name: "Ana"}}}
	s, _ := newAuthStore(&fakeAuthAPI{}, vault)

	require.NoError(t, s.LoadSession())
	assert.Equal(t, token, s.Token())
}

// TestAuthStore_LoadSessionExpiradaDescartaElVault un token guardado con exp
// en el pasado se descarta del vault y la consola pide login de nuevo.
func TestAuthStore_LoadSessionExpiradaDescartaElVault(t *testing.T) {
	token := signedToken(t, time.Now().Add(-time.Hour))
	vault := &memoryVault{session: &remote.Session{Token: token, User: entity.User{Email: "ana@example.com"}}}
	s, _ := newAuthStore(&fakeAuthAPI{}, vault)

	err := s.LoadSession()

	require.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Nil(t, vault.session, "el archivo de sesión expirado se elimina")
	assert.Empty(t, s.Token())
}

func TestAuthStore_LoadSessionSinArchivo(t *testing.T) {
	s, _ := newAuthStore(&fakeAuthAPI{}, &memoryVault{})
	assert.ErrorIs(t, s.LoadSession(), domain.ErrNoSession)
}

func TestAuthStore_LogoutLimpiaTodo(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	vault := &memoryVault{session: &remote.Session{Token: token}}
	s, _ := newAuthStore(&fakeAuthAPI{}, vault)
	require.NoError(t, s.LoadSession())

	require.NoError(t, s.Logout())

	assert.Empty(t, s.Token())
	assert.Nil(t, vault.session)
}

func TestAuthStore_ChangePassword(t *testing.T) {
	s, notify := newAuthStore(&fakeAuthAPI{}, &memoryVault{})
	require.NoError(t, s.ChangePassword(context.Background(), "old", "new"))
	assert.Contains(t, notify.lastSuccess(), "Contraseña actualizada")

	s2, notify2 := newAuthStore(&fakeAuthAPI{passwordErr: errors.New("boom")}, &memoryVault{})
	assert.Error(t, s2.ChangePassword(context.Background(), "old", "new"))
	assert.NotEmpty(t, notify2.lastError())
}
