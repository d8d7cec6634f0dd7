package remote

import (
	"errors"
	"fmt"
)

// Error falla reportada por el backend con cuerpo estructurado {message}.
// Distingue las fallas de validación del servidor de los errores de
// transporte, que llegan como errores envueltos normales.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: HTTP %d", e.StatusCode)
}

// ErrorMessage extrae el mensaje del backend si err lo trae; si no, devuelve
// fallback. Es el texto que se muestra en la notificación al usuario.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
