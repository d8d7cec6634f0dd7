// Package secrets implementa el vault de sesión sobre un archivo local con
// permisos 0600 (el equivalente de escritorio del almacenamiento seguro del
// dispositivo).
package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/comercio-admin/internal/application/ports"
	"github.com/jhoicas/comercio-admin/internal/domain"
	"github.com/jhoicas/comercio-admin/internal/domain/remote"
)

var _ ports.TokenVault = (*FileVault)(nil)

// FileVault vault de sesión respaldado en un archivo JSON.
type FileVault struct {
	path string
}

// NewFileVault construye el vault sobre la ruta dada.
func NewFileVault(path string) *FileVault {
	return &FileVault{path: path}
}

// Save persiste la sesión; crea el directorio si no existe y escribe con
// permisos restringidos al dueño.
func (v *FileVault) Save(session remote.Session) error {
	if err := os.MkdirAll(filepath.Dir(v.path), 0o700); err != nil {
		return fmt.Errorf("vault: crear directorio: %w", err)
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("vault: serializar sesión: %w", err)
	}
	if err := os.WriteFile(v.path, data, 0o600); err != nil {
		return fmt.Errorf("vault: escribir sesión: %w", err)
	}
	return nil
}

// Load lee la sesión persistida; sin archivo devuelve domain.ErrNoSession.
func (v *FileVault) Load() (*remote.Session, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("vault: leer sesión: %w", err)
	}
	var session remote.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("vault: decodificar sesión: %w", err)
	}
	if session.Token == "" {
		return nil, domain.ErrNoSession
	}
	return &session, nil
}

// Clear elimina la sesión persistida; sin archivo no es error.
func (v *FileVault) Clear() error {
	if err := os.Remove(v.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("vault: eliminar sesión: %w", err)
	}
	return nil
}
