package pedido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalessi/gestor/internal/domain/cliente"
	"github.com/khalessi/gestor/internal/domain/producto"
)

func clienteDePrueba(t *testing.T) *cliente.Cliente {
	t.Helper()
	c, err := cliente.NewCliente("Ana", "García", "Av. Siempreviva 742", "1155550000", "ana@example.com")
	require.NoError(t, err)
	return c
}

func productoDePrueba(t *testing.T, nombre string, costo, venta float64) producto.Producto {
	t.Helper()
	p, err := producto.NewProducto(nombre, costo, venta)
	require.NoError(t, err)
	return *p
}

func TestBorradorTotales(t *testing.T) {
	b := NewBorrador()

	torta := productoDePrueba(t, "Torta", 10, 16)
	alfajor := productoDePrueba(t, "Alfajor", 5, 6)

	require.NoError(t, b.AgregarProducto(torta, 2))
	require.NoError(t, b.AgregarProducto(alfajor, 1))

	totalCosto, totalVenta := b.Totales()
	assert.InDelta(t, 25.0, totalCosto, 1e-9)
	assert.InDelta(t, 38.0, totalVenta, 1e-9)
}

func TestBorradorTotalesVacio(t *testing.T) {
	b := NewBorrador()

	totalCosto, totalVenta := b.Totales()
	assert.Zero(t, totalCosto)
	assert.Zero(t, totalVenta)
}

func TestBorradorAgregarProductoCantidadInvalida(t *testing.T) {
	b := NewBorrador()
	p := productoDePrueba(t, "Torta", 10, 16)

	assert.ErrorIs(t, b.AgregarProducto(p, 0), ErrCantidadInvalida)
	assert.ErrorIs(t, b.AgregarProducto(p, -3), ErrCantidadInvalida)
	assert.Empty(t, b.Lineas)
}

func TestBorradorLineasRepetidasNoSeFusionan(t *testing.T) {
	b := NewBorrador()
	torta := productoDePrueba(t, "Torta", 10, 16)

	require.NoError(t, b.AgregarProducto(torta, 1))
	require.NoError(t, b.AgregarProducto(torta, 2))

	// Dos líneas separadas del mismo producto, no una con cantidad 3
	require.Len(t, b.Lineas, 2)
	assert.Equal(t, 1, b.Lineas[0].Cantidad)
	assert.Equal(t, 2, b.Lineas[1].Cantidad)

	_, totalVenta := b.Totales()
	assert.InDelta(t, 48.0, totalVenta, 1e-9)
}

func TestBorradorQuitarProducto(t *testing.T) {
	b := NewBorrador()
	torta := productoDePrueba(t, "Torta", 10, 16)
	alfajor := productoDePrueba(t, "Alfajor", 5, 6)

	require.NoError(t, b.AgregarProducto(torta, 1))
	require.NoError(t, b.AgregarProducto(alfajor, 1))

	require.NoError(t, b.QuitarProducto(0))

	require.Len(t, b.Lineas, 1)
	assert.Equal(t, "Alfajor", b.Lineas[0].Producto.Nombre)
}

func TestBorradorQuitarProductoIndiceInvalido(t *testing.T) {
	b := NewBorrador()
	p := productoDePrueba(t, "Torta", 10, 16)
	require.NoError(t, b.AgregarProducto(p, 1))

	assert.ErrorIs(t, b.QuitarProducto(-1), ErrIndiceInvalido)
	assert.ErrorIs(t, b.QuitarProducto(1), ErrIndiceInvalido)
	assert.Len(t, b.Lineas, 1)
}

func TestBorradorFinalizarSinCliente(t *testing.T) {
	b := NewBorrador()
	p := productoDePrueba(t, "Torta", 10, 16)
	require.NoError(t, b.AgregarProducto(p, 1))

	pedido, err := b.Finalizar()
	assert.ErrorIs(t, err, ErrSinCliente)
	assert.Nil(t, pedido)

	// El borrador queda intacto tras el rechazo
	assert.Len(t, b.Lineas, 1)
}

func TestBorradorFinalizarSinProductos(t *testing.T) {
	b := NewBorrador()
	b.SeleccionarCliente(clienteDePrueba(t))

	pedido, err := b.Finalizar()
	assert.ErrorIs(t, err, ErrSinProductos)
	assert.Nil(t, pedido)
}

func TestBorradorFinalizar(t *testing.T) {
	b := NewBorrador()
	c := clienteDePrueba(t)
	b.SeleccionarCliente(c)

	torta := productoDePrueba(t, "Torta", 10, 16)
	require.NoError(t, b.AgregarProducto(torta, 2))

	pedido, err := b.Finalizar()
	require.NoError(t, err)

	assert.NotEmpty(t, pedido.ID)
	assert.Equal(t, c.ID, pedido.IDCliente)
	assert.Equal(t, EstadoPendiente, pedido.Estado)
	assert.Equal(t, PagoDebe, pedido.Pago)
	assert.InDelta(t, 20.0, pedido.TotalCosto, 1e-9)
	assert.InDelta(t, 32.0, pedido.TotalVenta, 1e-9)

	require.Len(t, pedido.Items, 1)
	assert.Equal(t, pedido.ID, pedido.Items[0].IDPedido)
	assert.Equal(t, torta.ID, pedido.Items[0].IDProducto)
	assert.Equal(t, "Torta", pedido.Items[0].NombreProducto)
	assert.Equal(t, 2, pedido.Items[0].Cantidad)
	assert.InDelta(t, 16.0, pedido.Items[0].PrecioUnitario, 1e-9)
}

func TestBorradorPrecioCongelado(t *testing.T) {
	b := NewBorrador()
	b.SeleccionarCliente(clienteDePrueba(t))

	torta := productoDePrueba(t, "Torta", 10, 16)
	require.NoError(t, b.AgregarProducto(torta, 1))

	pedido, err := b.Finalizar()
	require.NoError(t, err)

	// Un cambio de precio posterior no afecta al pedido ya finalizado
	require.NoError(t, torta.Update("Torta", 12, 20))

	assert.InDelta(t, 16.0, pedido.Items[0].PrecioUnitario, 1e-9)
	assert.InDelta(t, 16.0, pedido.TotalVenta, 1e-9)
}

func TestBorradorReemplazarCliente(t *testing.T) {
	b := NewBorrador()
	primero := clienteDePrueba(t)
	b.SeleccionarCliente(primero)

	segundo, err := cliente.NewCliente("Berta", "López", "", "", "")
	require.NoError(t, err)
	b.SeleccionarCliente(segundo)

	assert.Equal(t, segundo.ID, b.Cliente.ID)

	b.QuitarCliente()
	assert.Nil(t, b.Cliente)
}

func TestBorradorReiniciar(t *testing.T) {
	b := NewBorrador()
	b.SeleccionarCliente(clienteDePrueba(t))
	require.NoError(t, b.AgregarProducto(productoDePrueba(t, "Torta", 10, 16), 1))

	b.Reiniciar()

	assert.Nil(t, b.Cliente)
	assert.Empty(t, b.Lineas)
}
