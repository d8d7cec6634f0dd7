// Package jwt inspección de tokens del lado del cliente. La consola no posee
// el secreto de firma del backend, así que nunca valida la firma: solo lee
// los claims para saber si la sesión guardada sigue vigente antes de
// adjuntarla a las peticiones.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo claims relevantes de un token bearer.
type TokenInfo struct {
	Subject   string
	Issuer    string
	ExpiresAt time.Time // cero si el token no declara exp
}

// Inspect decodifica el token sin validar la firma y devuelve sus claims.
// Retorna error si el token está malformado.
func Inspect(token string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("jwt: token malformado: %w", err)
	}
	info := &TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iss, err := claims.GetIssuer(); err == nil {
		info.Issuer = iss
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

// Expired indica si el token declara una expiración ya vencida. Un token sin
// claim exp no se considera expirado.
func Expired(token string, now time.Time) bool {
	info, err := Inspect(token)
	if err != nil {
		return true
	}
	return !info.ExpiresAt.IsZero() && info.ExpiresAt.Before(now)
}
