package dto

import (
	"github.com/khalessi/gestor/internal/domain/pedido"
	"github.com/khalessi/gestor/internal/domain/venta"
)

// VentaResponse representa una fila del reporte de ventas: un pedido visto
// desde la perspectiva contable, con su ganancia calculada
type VentaResponse struct {
	IDPedido   string        `json:"id_pedido"`
	IDCliente  string        `json:"id_cliente"`
	Fecha      string        `json:"fecha"`
	TotalCosto float64       `json:"total_costo"`
	TotalVenta float64       `json:"total_venta"`
	Ganancia   float64       `json:"ganancia"`
	Estado     pedido.Estado `json:"estado"`
	Pago       pedido.Pago   `json:"pago"`
}

// VentaListResponse representa el reporte de ventas completo: todas las
// filas más el resumen agregado
type VentaListResponse struct {
	Ventas  []VentaResponse       `json:"ventas"`
	Total   int                   `json:"total"`
	Resumen ResumenVentasResponse `json:"resumen"`
}

// ToVentaListResponse convierte la colección de pedidos en el reporte de
// ventas con su resumen
func ToVentaListResponse(pedidos []*pedido.Pedido) VentaListResponse {
	ventas := make([]VentaResponse, 0, len(pedidos))
	for _, p := range pedidos {
		ventas = append(ventas, VentaResponse{
			IDPedido:   p.ID,
			IDCliente:  p.IDCliente,
			Fecha:      p.Fecha.Format("2006-01-02"),
			TotalCosto: Redondear2(p.TotalCosto),
			TotalVenta: Redondear2(p.TotalVenta),
			Ganancia:   Redondear2(p.Ganancia()),
			Estado:     p.Estado,
			Pago:       p.Pago,
		})
	}

	return VentaListResponse{
		Ventas:  ventas,
		Total:   len(ventas),
		Resumen: ToResumenVentasResponse(venta.Resumir(pedidos)),
	}
}

// ResumenVentasResponse representa las tres cifras del resumen de ventas,
// redondeadas a dos decimales para presentación
type ResumenVentasResponse struct {
	TotalCosto float64 `json:"total_costo"`
	Ganancia   float64 `json:"ganancia"`
	Caja       float64 `json:"caja"`
}

// ToResumenVentasResponse convierte el resumen de dominio en su respuesta
func ToResumenVentasResponse(r venta.Resumen) ResumenVentasResponse {
	return ResumenVentasResponse{
		TotalCosto: Redondear2(r.TotalCosto),
		Ganancia:   Redondear2(r.Ganancia),
		Caja:       Redondear2(r.Caja),
	}
}
