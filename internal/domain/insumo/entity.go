package insumo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNombreVacio      = errors.New("el nombre del insumo no puede estar vacío")
	ErrPrecioNegativo   = errors.New("el precio de costo no puede ser negativo")
	ErrCantidadNegativa = errors.New("la cantidad no puede ser negativa")
)

// UmbralStockBajo es la cantidad a partir de la cual (inclusive) un insumo
// se marca como stock bajo. Es una advertencia de visualización, no una
// restricción sobre las operaciones.
const UmbralStockBajo = 10

// Insumo representa un insumo de stock, distinto de los productos a la venta
type Insumo struct {
	ID          string    `json:"id_insumo"`
	Nombre      string    `json:"nombre_insumo"`
	PrecioCosto float64   `json:"precio_costo"`
	Cantidad    int       `json:"cantidad"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewInsumo crea un nuevo insumo
func NewInsumo(nombre string, precioCosto float64, cantidad int) (*Insumo, error) {
	if nombre == "" {
		return nil, ErrNombreVacio
	}

	if precioCosto < 0 {
		return nil, ErrPrecioNegativo
	}

	if cantidad < 0 {
		return nil, ErrCantidadNegativa
	}

	now := time.Now()
	return &Insumo{
		ID:          uuid.New().String(),
		Nombre:      nombre,
		PrecioCosto: precioCosto,
		Cantidad:    cantidad,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// StockBajo indica si la cantidad en mano está en o por debajo del umbral
func (i *Insumo) StockBajo() bool {
	return i.Cantidad <= UmbralStockBajo
}

// ValorTotal retorna el valor del stock en mano (costo × cantidad)
func (i *Insumo) ValorTotal() float64 {
	return i.PrecioCosto * float64(i.Cantidad)
}

// Update actualiza los datos del insumo
func (i *Insumo) Update(nombre string, precioCosto float64, cantidad int) error {
	if nombre == "" {
		return ErrNombreVacio
	}

	if precioCosto < 0 {
		return ErrPrecioNegativo
	}

	if cantidad < 0 {
		return ErrCantidadNegativa
	}

	i.Nombre = nombre
	i.PrecioCosto = precioCosto
	i.Cantidad = cantidad
	i.UpdatedAt = time.Now()

	return nil
}
