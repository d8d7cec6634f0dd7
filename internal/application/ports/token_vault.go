package ports

import "github.com/jhoicas/comercio-admin/internal/domain/remote"

// TokenVault almacenamiento persistente y seguro de la sesión (token bearer
// más snapshot del usuario). Load devuelve domain.ErrNoSession si no hay
// sesión guardada.
type TokenVault interface {
	Save(session remote.Session) error
	Load() (*remote.Session, error)
	Clear() error
}
