package dto

import (
	"time"

	"github.com/khalessi/gestor/internal/domain/insumo"
)

// InsumoRequest representa la petición de alta o modificación de un insumo
type InsumoRequest struct {
	Nombre      string   `json:"nombre_insumo" binding:"required"`
	PrecioCosto *float64 `json:"precio_costo" binding:"required,gte=0"`
	Cantidad    *int     `json:"cantidad" binding:"required,gte=0"`
}

// InsumoResponse representa la respuesta de un insumo. StockBajo es solo una
// advertencia de visualización.
type InsumoResponse struct {
	ID          string    `json:"id_insumo"`
	Nombre      string    `json:"nombre_insumo"`
	PrecioCosto float64   `json:"precio_costo"`
	Cantidad    int       `json:"cantidad"`
	StockBajo   bool      `json:"stock_bajo"`
	ValorTotal  float64   `json:"valor_total"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InsumoListResponse representa la respuesta de la lista de insumos
type InsumoListResponse struct {
	Items []InsumoResponse `json:"items"`
	Total int              `json:"total"`
}

// ToInsumoResponse convierte la entidad de dominio en su respuesta
func ToInsumoResponse(i *insumo.Insumo) InsumoResponse {
	return InsumoResponse{
		ID:          i.ID,
		Nombre:      i.Nombre,
		PrecioCosto: Redondear2(i.PrecioCosto),
		Cantidad:    i.Cantidad,
		StockBajo:   i.StockBajo(),
		ValorTotal:  Redondear2(i.ValorTotal()),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToInsumoListResponse convierte la colección de insumos en su respuesta
func ToInsumoListResponse(insumos []*insumo.Insumo) InsumoListResponse {
	items := make([]InsumoResponse, 0, len(insumos))
	for _, i := range insumos {
		items = append(items, ToInsumoResponse(i))
	}

	return InsumoListResponse{
		Items: items,
		Total: len(items),
	}
}
