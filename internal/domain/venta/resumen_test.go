package venta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khalessi/gestor/internal/domain/pedido"
)

func TestResumirVacio(t *testing.T) {
	r := Resumir(nil)

	assert.Zero(t, r.TotalCosto)
	assert.Zero(t, r.Ganancia)
	assert.Zero(t, r.Caja)
}

func TestResumir(t *testing.T) {
	pedidos := []*pedido.Pedido{
		{
			TotalCosto: 10,
			TotalVenta: 30,
			Estado:     pedido.EstadoEntregado,
			Pago:       pedido.PagoPagado,
		},
		{
			TotalCosto: 20,
			TotalVenta: 15,
			Estado:     pedido.EstadoPendiente,
			Pago:       pedido.PagoDebe,
		},
	}

	r := Resumir(pedidos)

	// La ganancia suma sobre todos los pedidos, incluso los no realizados
	assert.InDelta(t, 30.0, r.TotalCosto, 1e-9)
	assert.InDelta(t, 15.0, r.Ganancia, 1e-9)

	// La caja solo cuenta el pedido entregado y pagado
	assert.InDelta(t, 30.0, r.Caja, 1e-9)
}

func TestResumirCajaExigeAmbosEjes(t *testing.T) {
	casos := []struct {
		nombre string
		estado pedido.Estado
		pago   pedido.Pago
		caja   float64
	}{
		{"pagado pero pendiente", pedido.EstadoPendiente, pedido.PagoPagado, 0},
		{"entregado pero debe", pedido.EstadoEntregado, pedido.PagoDebe, 0},
		{"entregado y pagado", pedido.EstadoEntregado, pedido.PagoPagado, 100},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			r := Resumir([]*pedido.Pedido{{
				TotalCosto: 60,
				TotalVenta: 100,
				Estado:     c.estado,
				Pago:       c.pago,
			}})

			assert.InDelta(t, c.caja, r.Caja, 1e-9)
			assert.InDelta(t, 40.0, r.Ganancia, 1e-9)
		})
	}
}

func TestResumirGananciaNegativa(t *testing.T) {
	r := Resumir([]*pedido.Pedido{{
		TotalCosto: 50,
		TotalVenta: 40,
		Estado:     pedido.EstadoEntregado,
		Pago:       pedido.PagoPagado,
	}})

	assert.InDelta(t, -10.0, r.Ganancia, 1e-9)
	assert.InDelta(t, 40.0, r.Caja, 1e-9)
}
