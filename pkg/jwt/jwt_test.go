package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comercio-admin/pkg/jwt"
)

func buildToken(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspect_LeeLosClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := buildToken(t, gojwt.MapClaims{
		"sub": "u1",
		"iss": "ecommerce-api",
		"exp": exp.Unix(),
	})

	info, err := jwt.Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, "u1", info.Subject)
	assert.Equal(t, "ecommerce-api", info.Issuer)
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestInspect_TokenMalformado(t *testing.T) {
	_, err := jwt.Inspect("no-es-un-jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()

	vigente := buildToken(t, gojwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	assert.False(t, jwt.Expired(vigente, now))

	vencido := buildToken(t, gojwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	assert.True(t, jwt.Expired(vencido, now))

	// Sin claim exp el token no se considera expirado; la decisión queda en
	// el backend.
	sinExp := buildToken(t, gojwt.MapClaims{"sub": "u1"})
	assert.False(t, jwt.Expired(sinExp, now))

	// Un token ilegible se trata como expirado para forzar un login limpio.
	assert.True(t, jwt.Expired("basura", now))
}
