package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/comercio-admin/internal/application/ports"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/entity"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
	"github.com/jhoicas/comercio-admin/pkg/jwt"
	"github.com/jhoicas/comercio-admin/pkg/logger"
)

// AuthStore sesión del administrador: login contra el backend, persistencia
// del token en el vault y exposición del bearer para el resto de llamadas.
type AuthStore struct {
	api    remote.AuthAPI
	vault  ports.TokenVault
	notify ports.Notifier
	log    *logger.Logger

	mu      sync.Mutex
	session *remote.Session
}

// NewAuthStore construye el store de sesión.
func NewAuthStore(api remote.AuthAPI, vault ports.TokenVault, notify ports.Notifier, log *logger.Logger) *AuthStore {
	return &AuthStore{api: api, vault: vault, notify: notify, log: log}
}

// Token devuelve el bearer vigente o vacío si no hay sesión. Implementa el
// TokenSource del cliente REST.
func (s *AuthStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// User devuelve el usuario autenticado o nil.
func (s *AuthStore) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	u := s.session.User
	return &u
}

// Login autentica contra el backend y persiste la sesión en el vault.
func (s *AuthStore) Login(ctx context.Context, email, password string) error {
	session, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("login")
		s.notify.Error("Sesión", remote.ErrorMessage(err, "No se pudo iniciar sesión"))
		return err
	}
	if err := s.vault.Save(*session); err != nil {
		s.log.Error().Err(err).Msg("guardar sesión")
		s.notify.Error("Sesión", "No se pudo guardar la sesión")
		return err
	}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	s.notify.Success("Sesión", "Bienvenido, "+session.User.Name)
	return nil
}

// LoadSession restaura la sesión persistida al arrancar. Si el token ya
// expiró se descarta el archivo y se devuelve domain.ErrSessionExpired para
// que la consola pida login de nuevo.
func (s *AuthStore) LoadSession() error {
	session, err := s.vault.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return err
		}
		s.log.Error().Err(err).Msg("leer sesión guardada")
		return err
	}
	if jwt.Expired(session.Token, time.Now()) {
		_ = s.vault.Clear()
		s.log.Info().Str("user", session.User.Email).Msg("sesión guardada expirada")
		return domain.ErrSessionExpired
	}
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	return nil
}

// Logout descarta la sesión local y el archivo del vault.
func (s *AuthStore) Logout() error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return s.vault.Clear()
}

// ChangePassword cambia la contraseña del administrador autenticado.
func (s *AuthStore) ChangePassword(ctx context.Context, current, updated string) error {
	if err := s.api.ChangePassword(ctx, current, updated); err != nil {
		s.log.Error().Err(err).Msg("cambiar contraseña")
		s.notify.Error("Sesión", remote.ErrorMessage(err, "No se pudo cambiar la contraseña"))
		return err
	}
	s.notify.Success("Sesión", "Contraseña actualizada")
	return nil
}
