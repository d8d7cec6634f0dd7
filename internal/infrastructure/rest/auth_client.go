package rest

import (
	"context"
	"net/http"

	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var _ remote.AuthAPI = (*AuthClient)(nil)

// AuthClient adaptador de /auth.
type AuthClient struct {
	c *Client
}

// NewAuthClient construye el adaptador.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// Login autentica y devuelve token + usuario. El backend responde el token
// junto a los campos del usuario en el nivel superior del objeto.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*remote.Session, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var out struct {
		Token       string `json:"token"`
		entity.User        // campos del usuario inline en la respuesta
	}
	if err := a.c.sendJSON(ctx, http.MethodPost, "/auth/login", payload, &out); err != nil {
		return nil, err
	}
	return &remote.Session{Token: out.Token, User: out.User}, nil
}

// ChangePassword cambia la contraseña del usuario autenticado.
func (a *AuthClient) ChangePassword(ctx context.Context, current, updated string) error {
	payload := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{CurrentPassword: current, NewPassword: updated}

	return a.c.sendJSON(ctx, http.MethodPut, "/auth/change-password", payload, nil)
}
