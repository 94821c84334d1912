package dto

import (
	"time"

	"github.com/khalessi/gestor/internal/domain/pedido"
)

// ItemPedidoRequest representa una línea de la petición de pedido
type ItemPedidoRequest struct {
	IDProducto string `json:"id_producto" binding:"required"`
	Cantidad   int    `json:"cantidad" binding:"required,gt=0"`
}

// PedidoRequest representa la petición de un pedido nuevo: el cliente
// seleccionado y el multiconjunto de líneas. Las líneas repetidas del mismo
// producto se conservan como renglones separados.
type PedidoRequest struct {
	IDCliente string              `json:"id_cliente" binding:"required"`
	Items     []ItemPedidoRequest `json:"productos" binding:"required,min=1,dive"`
}

// PedidoUpdateRequest representa la reescritura de los estados de un pedido
type PedidoUpdateRequest struct {
	Estado pedido.Estado `json:"estado" binding:"required"`
	Pago   pedido.Pago   `json:"pago" binding:"required"`
}

// EstadoRequest representa el cambio de estado de entrega de un pedido
type EstadoRequest struct {
	Estado pedido.Estado `json:"estado" binding:"required"`
}

// PagoRequest representa el cambio de estado de pago de un pedido
type PagoRequest struct {
	Pago pedido.Pago `json:"pago" binding:"required"`
}

// ItemPedidoResponse representa una línea persistida del pedido, con el
// precio unitario congelado al momento de la creación
type ItemPedidoResponse struct {
	IDProducto     string  `json:"id_producto"`
	NombreProducto string  `json:"nombre_producto"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

// PedidoResponse representa la respuesta de un pedido
type PedidoResponse struct {
	ID         string               `json:"id_pedido"`
	IDCliente  string               `json:"id_cliente"`
	Fecha      string               `json:"fecha"`
	Items      []ItemPedidoResponse `json:"productos"`
	TotalCosto float64              `json:"total_costo"`
	TotalVenta float64              `json:"total_venta"`
	Ganancia   float64              `json:"ganancia"`
	Estado     pedido.Estado        `json:"estado"`
	Pago       pedido.Pago          `json:"pago"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// PedidoListResponse representa la respuesta de la lista de pedidos
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Total int              `json:"total"`
}

// ToPedidoResponse convierte la entidad de dominio en su respuesta
func ToPedidoResponse(p *pedido.Pedido) PedidoResponse {
	items := make([]ItemPedidoResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, ItemPedidoResponse{
			IDProducto:     item.IDProducto,
			NombreProducto: item.NombreProducto,
			Cantidad:       item.Cantidad,
			PrecioUnitario: Redondear2(item.PrecioUnitario),
		})
	}

	return PedidoResponse{
		ID:         p.ID,
		IDCliente:  p.IDCliente,
		Fecha:      p.Fecha.Format("2006-01-02"),
		Items:      items,
		TotalCosto: Redondear2(p.TotalCosto),
		TotalVenta: Redondear2(p.TotalVenta),
		Ganancia:   Redondear2(p.Ganancia()),
		Estado:     p.Estado,
		Pago:       p.Pago,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToPedidoListResponse convierte la colección de pedidos en su respuesta
func ToPedidoListResponse(pedidos []*pedido.Pedido) PedidoListResponse {
	items := make([]PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		items = append(items, ToPedidoResponse(p))
	}

	return PedidoListResponse{
		Items: items,
		Total: len(items),
	}
}
