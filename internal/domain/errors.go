package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrNoSession      = errors.New("no hay sesión activa")
	ErrSessionExpired = errors.New("la sesión expiró")
	ErrUnauthorized   = errors.New("no autorizado")
)
