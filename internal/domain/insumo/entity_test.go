package insumo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInsumoValidaciones(t *testing.T) {
	_, err := NewInsumo("", 5, 3)
	assert.ErrorIs(t, err, ErrNombreVacio)

	_, err = NewInsumo("Harina", -1, 3)
	assert.ErrorIs(t, err, ErrPrecioNegativo)

	_, err = NewInsumo("Harina", 5, -1)
	assert.ErrorIs(t, err, ErrCantidadNegativa)

	// Cantidad cero es válida
	i, err := NewInsumo("Harina", 5, 0)
	require.NoError(t, err)
	assert.Zero(t, i.Cantidad)
}

func TestInsumoStockBajo(t *testing.T) {
	casos := []struct {
		cantidad int
		bajo     bool
	}{
		{0, true},
		{9, true},
		{10, true}, // el umbral es inclusivo
		{11, false},
		{100, false},
	}

	for _, c := range casos {
		i, err := NewInsumo("Harina", 5, c.cantidad)
		require.NoError(t, err)
		assert.Equal(t, c.bajo, i.StockBajo(), "cantidad %d", c.cantidad)
	}
}

func TestInsumoValorTotal(t *testing.T) {
	i, err := NewInsumo("Harina", 2.5, 4)
	require.NoError(t, err)

	assert.InDelta(t, 10.0, i.ValorTotal(), 1e-9)
}

func TestInsumoUpdate(t *testing.T) {
	i, err := NewInsumo("Harina", 5, 20)
	require.NoError(t, err)

	require.NoError(t, i.Update("Harina 000", 6, 8))
	assert.Equal(t, "Harina 000", i.Nombre)
	assert.True(t, i.StockBajo())

	assert.ErrorIs(t, i.Update("", 6, 8), ErrNombreVacio)
	assert.ErrorIs(t, i.Update("Harina", 6, -2), ErrCantidadNegativa)
}
