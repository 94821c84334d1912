package producto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducto(t *testing.T) {
	p, err := NewProducto("Torta", 10, 16)
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Torta", p.Nombre)
	assert.InDelta(t, 10.0, p.PrecioCosto, 1e-9)
	assert.InDelta(t, 16.0, p.PrecioVenta, 1e-9)
}

func TestNewProductoValidaciones(t *testing.T) {
	_, err := NewProducto("", 10, 16)
	assert.ErrorIs(t, err, ErrNombreVacio)

	_, err = NewProducto("Torta", -1, 16)
	assert.ErrorIs(t, err, ErrPrecioNegativo)

	_, err = NewProducto("Torta", 10, -1)
	assert.ErrorIs(t, err, ErrPrecioNegativo)

	// El precio cero es válido
	_, err = NewProducto("Muestra", 0, 0)
	assert.NoError(t, err)
}

func TestProductoMargen(t *testing.T) {
	p, err := NewProducto("Torta", 10, 15)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.Margen(), 1e-9)

	// Venta por debajo del costo: margen negativo, se tolera
	barato, err := NewProducto("Oferta", 10, 8)
	require.NoError(t, err)
	assert.InDelta(t, -0.2, barato.Margen(), 1e-9)

	// Costo cero no divide por cero
	gratis, err := NewProducto("Regalo", 0, 5)
	require.NoError(t, err)
	assert.Zero(t, gratis.Margen())
}

func TestProductoUpdate(t *testing.T) {
	p, err := NewProducto("Torta", 10, 16)
	require.NoError(t, err)

	require.NoError(t, p.Update("Torta grande", 12, 20))
	assert.Equal(t, "Torta grande", p.Nombre)
	assert.InDelta(t, 12.0, p.PrecioCosto, 1e-9)

	assert.ErrorIs(t, p.Update("", 12, 20), ErrNombreVacio)
	assert.ErrorIs(t, p.Update("Torta", -5, 20), ErrPrecioNegativo)
}
