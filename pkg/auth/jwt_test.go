package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTServiceSinClave(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := NewJWTService()
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")

	s, err := NewJWTService()
	require.NoError(t, err)

	token, expiresAt, err := s.GenerateToken("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Usuario)
}

func TestValidateTokenInvalido(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")

	s, err := NewJWTService()
	require.NoError(t, err)

	_, err = s.ValidateToken("no-es-un-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenDeOtraClave(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "clave-uno")
	uno, err := NewJWTService()
	require.NoError(t, err)

	token, _, err := uno.GenerateToken("admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "clave-dos")
	dos, err := NewJWTService()
	require.NoError(t, err)

	_, err = dos.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
