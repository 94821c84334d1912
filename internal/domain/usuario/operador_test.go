package usuario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewOperadorValidaciones(t *testing.T) {
	_, err := NewOperador("", "secreto", "")
	assert.ErrorIs(t, err, ErrUsuarioVacio)

	_, err = NewOperador("admin", "", "")
	assert.ErrorIs(t, err, ErrSinContrasena)
}

func TestOperadorVerificarContrasenaPlana(t *testing.T) {
	o, err := NewOperador("admin", "secreto", "")
	require.NoError(t, err)

	assert.NoError(t, o.Verificar("admin", "secreto"))
	assert.ErrorIs(t, o.Verificar("admin", "otra"), ErrCredenciales)
	assert.ErrorIs(t, o.Verificar("otro", "secreto"), ErrCredenciales)
}

func TestOperadorVerificarHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	require.NoError(t, err)

	o, err := NewOperador("admin", "", string(hash))
	require.NoError(t, err)

	assert.NoError(t, o.Verificar("admin", "secreto"))
	assert.ErrorIs(t, o.Verificar("admin", "otra"), ErrCredenciales)
}

func TestOperadorHashTienePrioridad(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("delhash"), bcrypt.MinCost)
	require.NoError(t, err)

	// Si hay hash configurado la contraseña plana se ignora
	o, err := NewOperador("admin", "plana", string(hash))
	require.NoError(t, err)

	assert.NoError(t, o.Verificar("admin", "delhash"))
	assert.ErrorIs(t, o.Verificar("admin", "plana"), ErrCredenciales)
}
