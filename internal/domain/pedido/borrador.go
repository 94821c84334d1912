package pedido

import (
	"errors"
	"time"

	"github.com/khalessi/gestor/internal/domain/cliente"
	"github.com/khalessi/gestor/internal/domain/producto"
)

var (
	ErrSinCliente       = errors.New("debe seleccionar un cliente para el pedido")
	ErrSinProductos     = errors.New("el pedido debe tener al menos un producto")
	ErrCantidadInvalida = errors.New("la cantidad debe ser un entero positivo")
	ErrIndiceInvalido   = errors.New("índice de línea fuera de rango")
)

// Linea es un renglón del borrador: un producto y su cantidad. Mantiene el
// producto completo porque los totales se calculan con ambos precios.
type Linea struct {
	Producto producto.Producto
	Cantidad int
}

// Borrador acumula un pedido en memoria antes de confirmarlo. Admite a lo
// sumo un cliente, reemplazable en cualquier momento, y una lista ordenada de
// líneas. Repetir un producto agrega una línea nueva, nunca se fusionan.
type Borrador struct {
	Cliente *cliente.Cliente
	Lineas  []Linea
}

// NewBorrador crea un borrador vacío
func NewBorrador() *Borrador {
	return &Borrador{}
}

// SeleccionarCliente reemplaza el cliente del borrador
func (b *Borrador) SeleccionarCliente(c *cliente.Cliente) {
	b.Cliente = c
}

// QuitarCliente deselecciona el cliente del borrador
func (b *Borrador) QuitarCliente() {
	b.Cliente = nil
}

// AgregarProducto agrega una línea nueva al final del borrador
func (b *Borrador) AgregarProducto(p producto.Producto, cantidad int) error {
	if cantidad <= 0 {
		return ErrCantidadInvalida
	}

	b.Lineas = append(b.Lineas, Linea{Producto: p, Cantidad: cantidad})
	return nil
}

// QuitarProducto elimina la línea en la posición indicada
func (b *Borrador) QuitarProducto(indice int) error {
	if indice < 0 || indice >= len(b.Lineas) {
		return ErrIndiceInvalido
	}

	b.Lineas = append(b.Lineas[:indice], b.Lineas[indice+1:]...)
	return nil
}

// Totales calcula el costo y la venta totales del borrador: la suma sobre
// las líneas de precio unitario por cantidad, con el precio de costo y el de
// venta respectivamente. Aritmética en punto flotante sin redondeo; el
// redondeo a dos decimales ocurre recién al presentar los valores.
func (b *Borrador) Totales() (totalCosto, totalVenta float64) {
	for _, l := range b.Lineas {
		totalCosto += l.Producto.PrecioCosto * float64(l.Cantidad)
		totalVenta += l.Producto.PrecioVenta * float64(l.Cantidad)
	}
	return totalCosto, totalVenta
}

// Validar verifica las precondiciones para finalizar: cliente seleccionado
// y al menos una línea
func (b *Borrador) Validar() error {
	if b.Cliente == nil {
		return ErrSinCliente
	}

	if len(b.Lineas) == 0 {
		return ErrSinProductos
	}

	return nil
}

// Finalizar construye el pedido a partir del borrador. El pedido nace
// Pendiente y Debe, con la fecha del día, los totales calculados y una copia
// congelada del precio de venta vigente en cada ítem. Si falla la validación
// no se produce ningún cambio de estado.
func (b *Borrador) Finalizar() (*Pedido, error) {
	if err := b.Validar(); err != nil {
		return nil, err
	}

	totalCosto, totalVenta := b.Totales()

	now := time.Now()
	p := &Pedido{
		ID:         nuevoID(),
		IDCliente:  b.Cliente.ID,
		Fecha:      now.Truncate(24 * time.Hour),
		TotalCosto: totalCosto,
		TotalVenta: totalVenta,
		Estado:     EstadoPendiente,
		Pago:       PagoDebe,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, l := range b.Lineas {
		p.Items = append(p.Items, Item{
			IDPedido:       p.ID,
			IDProducto:     l.Producto.ID,
			NombreProducto: l.Producto.Nombre,
			Cantidad:       l.Cantidad,
			PrecioUnitario: l.Producto.PrecioVenta,
		})
	}

	return p, nil
}

// Reiniciar descarta el cliente y las líneas del borrador
func (b *Borrador) Reiniciar() {
	b.Cliente = nil
	b.Lineas = nil
}
