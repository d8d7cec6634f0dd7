package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/internal/infrastructure/rest"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de integración del cliente HTTP contra un httptest.Server que imita
// las respuestas del backend: headers, decodificación de errores {message},
// protocolo de toggle y envío multipart.
// ──────────────────────────────────────────────────────────────────────────────

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.Handler) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.NewClient(rest.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, logger.NewNop())
}

func TestClient_EnviaBearerYRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		_ = json.NewEncoder(w).Encode([]entity.Category{})
	}))
	client.SetTokenSource(staticToken("tok-123"))

	_, err := rest.NewCategoryClient(client).List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID, "cada llamada lleva su X-Request-ID")
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_SinSesionNoMandaAuthorization(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]entity.Category{})
	}))

	_, err := rest.NewCategoryClient(client).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// TestClient_ErrorEstructuradoDelBackend un status >= 400 se convierte en
// *remote.Error con el message del cuerpo; ese mensaje es el que llega a la
// notificación del usuario.
func TestClient_ErrorEstructuradoDelBackend(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Category not found"}`))
	}))

	_, err := rest.NewCategoryClient(client).List(context.Background())

	var apiErr *remote.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Category not found", apiErr.Message)
	assert.Equal(t, "Category not found", remote.ErrorMessage(err, "fallback"))
}

func TestClient_ErrorSinCuerpoUsaElFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := rest.NewCategoryClient(client).List(context.Background())
	require.Error(t, err)
	assert.Equal(t, "fallback", remote.ErrorMessage(err, "fallback"))
}

// TestCategoryClient_ToggleDELETENoElimina el DELETE de catálogo devuelve el
// flag conmutado y un mensaje; el adaptador los entrega tal cual.
func TestCategoryClient_ToggleDELETENoElimina(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"isActive":false,"message":"Category deactivated"}`))
	}))

	res, err := rest.NewCategoryClient(client).ToggleActive(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/categories/c1", gotPath)
	assert.False(t, res.IsActive)
	assert.Equal(t, "Category deactivated", res.Message)
}

// TestCategoryClient_CreateMultipart el alta de categoría viaja multipart:
// campos de texto más el archivo de imagen bajo el campo "image".
func TestCategoryClient_CreateMultipart(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png-bytes"), 0o644))

	var gotName, gotIsActive, gotFileName string
	var gotFile []byte
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		gotIsActive = r.FormValue("isActive")

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		buf := make([]byte, header.Size)
		_, _ = file.Read(buf)
		gotFile = buf

		_ = json.NewEncoder(w).Encode(entity.Category{ID: "c1", Name: "Shoes", IsActive: true})
	}))

	active := true
	created, err := rest.NewCategoryClient(client).Create(context.Background(), remote.CategoryInput{
		Name:      "Shoes",
		IsActive:  &active,
		ImagePath: imagePath,
	})
	require.NoError(t, err)

	assert.Equal(t, "c1", created.ID)
	assert.Equal(t, "Shoes", gotName)
	assert.Equal(t, "true", gotIsActive)
	assert.Equal(t, "logo.png", gotFileName)
	assert.Equal(t, []byte("png-bytes"), gotFile)
}

func TestCategoryClient_CreateSinImagenOmiteElArchivo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("image")
		assert.Error(t, err, "sin ruta de imagen no viaja ningún archivo")
		_ = json.NewEncoder(w).Encode(entity.Category{ID: "c1", Name: "Shoes"})
	}))

	_, err := rest.NewCategoryClient(client).Create(context.Background(), remote.CategoryInput{Name: "Shoes"})
	require.NoError(t, err)
}

func TestOrderClient_SetStatusEnviaElEstado(t *testing.T) {
	var gotBody map[string]string
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(entity.Order{ID: "or1", Status: entity.OrderShipped})
	}))

	updated, err := rest.NewOrderClient(client).SetStatus(context.Background(), "or1", entity.OrderShipped)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/orders/or1", gotPath)
	assert.Equal(t, "Shipped", gotBody["status"])
	assert.Equal(t, entity.OrderShipped, updated.Status)
}

// TestAuthClient_LoginDecodificaUsuarioInline el backend devuelve el token y
// los campos del usuario al mismo nivel del objeto, no anidados bajo "user".
func TestAuthClient_LoginDecodificaUsuarioInline(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"token":"tok-1","_id":"u1","name":"Ana","email":"ana@example.com","role":"admin"}`))
	}))

	session, err := rest.NewAuthClient(client).Login(context.Background(), "ana@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", gotBody["email"])
	assert.Equal(t, "secret", gotBody["password"])
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, "Ana", session.User.Name)
	assert.Equal(t, "admin", session.User.Role)
}

// TestSubcategoryClient_CreateViajaJSON las subcategorías no llevan imagen:
// el payload es JSON plano, no multipart.
func TestSubcategoryClient_CreateViajaJSON(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"_id":"s1","name":"Sneakers","category":{"_id":"c1","name":"Shoes"},"isActive":true}`))
	}))

	created, err := rest.NewSubcategoryClient(client).Create(context.Background(), remote.SubcategoryInput{
		Name:       "Sneakers",
		CategoryID: "c1",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Sneakers", gotBody["name"])
	assert.Equal(t, "c1", gotBody["categoryId"])
	assert.Equal(t, "s1", created.ID)
	name, embedded := created.Category.EmbeddedName()
	assert.True(t, embedded)
	assert.Equal(t, "Shoes", name)
}
