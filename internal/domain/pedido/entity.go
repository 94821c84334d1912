package pedido

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEstadoInvalido = errors.New("estado de pedido inválido")
	ErrPagoInvalido   = errors.New("estado de pago inválido")
)

// Estado representa el estado de entrega del pedido
type Estado string

const (
	EstadoPendiente Estado = "Pendiente"
	EstadoEntregado Estado = "Entregado"
)

// Pago representa el estado de pago del pedido
type Pago string

const (
	PagoDebe   Pago = "Debe"
	PagoPagado Pago = "Pagado"
)

// EstadoValido verifica si el valor es un estado de entrega conocido
func EstadoValido(e Estado) bool {
	return e == EstadoPendiente || e == EstadoEntregado
}

// PagoValido verifica si el valor es un estado de pago conocido
func PagoValido(p Pago) bool {
	return p == PagoDebe || p == PagoPagado
}

// Item representa un renglón del pedido: un producto con su cantidad y el
// precio de venta unitario congelado al momento de crear el pedido. Ese
// precio no se recalcula si el producto cambia de precio después.
type Item struct {
	IDPedido       string  `json:"id_pedido"`
	IDProducto     string  `json:"id_producto"`
	NombreProducto string  `json:"nombre_producto"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

// Pedido representa la transacción de compra de un cliente. Los totales se
// calculan una única vez al finalizar el borrador; estado y pago son dos ejes
// independientes sin restricciones de transición entre sus valores.
type Pedido struct {
	ID         string    `json:"id_pedido"`
	IDCliente  string    `json:"id_cliente"`
	Fecha      time.Time `json:"fecha"`
	Items      []Item    `json:"productos"`
	TotalCosto float64   `json:"total_costo"`
	TotalVenta float64   `json:"total_venta"`
	Estado     Estado    `json:"estado"`
	Pago       Pago      `json:"pago"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Ganancia retorna la ganancia bruta del pedido (venta - costo)
func (p *Pedido) Ganancia() float64 {
	return p.TotalVenta - p.TotalCosto
}

// Realizado indica si el pedido cuenta para la caja: entregado Y pagado.
// Un pedido pagado pero pendiente de entrega, o entregado pero adeudado,
// no aporta a la caja.
func (p *Pedido) Realizado() bool {
	return p.Pago == PagoPagado && p.Estado == EstadoEntregado
}

// CambiarEstado actualiza el estado de entrega. Ambas direcciones están
// permitidas: Entregado puede volver a Pendiente.
func (p *Pedido) CambiarEstado(e Estado) error {
	if !EstadoValido(e) {
		return ErrEstadoInvalido
	}

	p.Estado = e
	p.UpdatedAt = time.Now()
	return nil
}

// CambiarPago actualiza el estado de pago. Debe y Pagado se alternan
// libremente, sin exigir entrega previa.
func (p *Pedido) CambiarPago(pg Pago) error {
	if !PagoValido(pg) {
		return ErrPagoInvalido
	}

	p.Pago = pg
	p.UpdatedAt = time.Now()
	return nil
}

// nuevoID genera el identificador de un pedido nuevo
func nuevoID() string {
	return uuid.New().String()
}
