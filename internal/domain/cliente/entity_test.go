package cliente

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCliente(t *testing.T) {
	c, err := NewCliente("Ana", "García", "Av. Siempreviva 742", "1155550000", "ana@example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Ana García", c.NombreCompleto())
}

func TestNewClienteValidaciones(t *testing.T) {
	_, err := NewCliente("", "García", "", "", "")
	assert.ErrorIs(t, err, ErrNombreVacio)

	_, err = NewCliente("Ana", "", "", "", "")
	assert.ErrorIs(t, err, ErrApellidoVacio)

	// Dirección, teléfono y email son opcionales
	_, err = NewCliente("Ana", "García", "", "", "")
	assert.NoError(t, err)
}

func TestClienteUpdate(t *testing.T) {
	c, err := NewCliente("Ana", "García", "", "", "")
	require.NoError(t, err)

	require.NoError(t, c.Update("Ana María", "García", "Calle 1", "123", "am@example.com"))
	assert.Equal(t, "Ana María", c.Nombre)
	assert.Equal(t, "Calle 1", c.Direccion)

	assert.ErrorIs(t, c.Update("", "García", "", "", ""), ErrNombreVacio)
}
