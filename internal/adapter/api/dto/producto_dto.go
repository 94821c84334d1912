package dto

import (
	"time"

	"github.com/khalessi/gestor/internal/domain/producto"
)

// ProductoRequest representa la petición de alta o modificación de un producto
type ProductoRequest struct {
	Nombre      string   `json:"nombre_producto" binding:"required"`
	PrecioCosto *float64 `json:"precio_costo" binding:"required,gte=0"`
	PrecioVenta *float64 `json:"precio_venta" binding:"required,gte=0"`
}

// ProductoResponse representa la respuesta de un producto. El margen se
// reporta tal cual, incluso si es negativo.
type ProductoResponse struct {
	ID          string    `json:"id_producto"`
	Nombre      string    `json:"nombre_producto"`
	PrecioCosto float64   `json:"precio_costo"`
	PrecioVenta float64   `json:"precio_venta"`
	Margen      float64   `json:"margen"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductoListResponse representa la respuesta de la lista de productos
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Total int                `json:"total"`
}

// ToProductoResponse convierte la entidad de dominio en su respuesta
func ToProductoResponse(p *producto.Producto) ProductoResponse {
	return ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		PrecioCosto: Redondear2(p.PrecioCosto),
		PrecioVenta: Redondear2(p.PrecioVenta),
		Margen:      p.Margen(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductoListResponse convierte la colección de productos en su respuesta
func ToProductoListResponse(productos []*producto.Producto) ProductoListResponse {
	items := make([]ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, ToProductoResponse(p))
	}

	return ProductoListResponse{
		Items: items,
		Total: len(items),
	}
}
