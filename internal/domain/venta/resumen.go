package venta

import (
	"github.com/khalessi/gestor/internal/domain/pedido"
)

// Resumen contiene las tres cifras derivadas de la colección de pedidos
type Resumen struct {
	// TotalCosto es la suma de total_costo sobre todos los pedidos, sin
	// importar estado ni pago
	TotalCosto float64 `json:"total_costo"`

	// Ganancia es la suma de (total_venta - total_costo) sobre todos los
	// pedidos, sin importar estado ni pago
	Ganancia float64 `json:"ganancia"`

	// Caja es la suma de total_venta restringida a pedidos entregados Y
	// pagados. El dinero cuenta como "en caja" recién cuando la entrega y
	// el pago se completaron ambos.
	Caja float64 `json:"caja"`
}

// Resumir recorre la colección de pedidos y calcula el resumen de ventas.
// Se recalcula completo en cada consulta; una colección vacía produce un
// resumen en cero.
func Resumir(pedidos []*pedido.Pedido) Resumen {
	var r Resumen

	for _, p := range pedidos {
		r.TotalCosto += p.TotalCosto
		r.Ganancia += p.Ganancia()

		if p.Realizado() {
			r.Caja += p.TotalVenta
		}
	}

	return r
}
