package pedido

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPedidoGanancia(t *testing.T) {
	p := &Pedido{TotalCosto: 10, TotalVenta: 15}
	assert.InDelta(t, 5.0, p.Ganancia(), 1e-9)

	// Venta por debajo del costo: la ganancia negativa se reporta tal cual
	perdida := &Pedido{TotalCosto: 20, TotalVenta: 15}
	assert.InDelta(t, -5.0, perdida.Ganancia(), 1e-9)
}

func TestPedidoRealizado(t *testing.T) {
	casos := []struct {
		nombre    string
		estado    Estado
		pago      Pago
		realizado bool
	}{
		{"pendiente y debe", EstadoPendiente, PagoDebe, false},
		{"pendiente y pagado", EstadoPendiente, PagoPagado, false},
		{"entregado y debe", EstadoEntregado, PagoDebe, false},
		{"entregado y pagado", EstadoEntregado, PagoPagado, true},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			p := &Pedido{Estado: c.estado, Pago: c.pago}
			assert.Equal(t, c.realizado, p.Realizado())
		})
	}
}

func TestPedidoCambiarEstadoAmbasDirecciones(t *testing.T) {
	p := &Pedido{Estado: EstadoPendiente, Pago: PagoDebe}

	require.NoError(t, p.CambiarEstado(EstadoEntregado))
	assert.Equal(t, EstadoEntregado, p.Estado)

	// Entregado puede volver a Pendiente
	require.NoError(t, p.CambiarEstado(EstadoPendiente))
	assert.Equal(t, EstadoPendiente, p.Estado)
}

func TestPedidoCambiarPagoSinExigirEntrega(t *testing.T) {
	p := &Pedido{Estado: EstadoPendiente, Pago: PagoDebe}

	require.NoError(t, p.CambiarPago(PagoPagado))
	assert.Equal(t, PagoPagado, p.Pago)
	assert.Equal(t, EstadoPendiente, p.Estado)

	require.NoError(t, p.CambiarPago(PagoDebe))
	assert.Equal(t, PagoDebe, p.Pago)
}

func TestPedidoEstadosInvalidos(t *testing.T) {
	p := &Pedido{Estado: EstadoPendiente, Pago: PagoDebe}

	assert.ErrorIs(t, p.CambiarEstado("Enviado"), ErrEstadoInvalido)
	assert.ErrorIs(t, p.CambiarPago("Parcial"), ErrPagoInvalido)
	assert.Equal(t, EstadoPendiente, p.Estado)
	assert.Equal(t, PagoDebe, p.Pago)
}
