package producto

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNombreVacio    = errors.New("el nombre del producto no puede estar vacío")
	ErrPrecioNegativo = errors.New("el precio no puede ser negativo")
)

// Producto representa un producto a la venta
type Producto struct {
	ID          string    `json:"id_producto"`
	Nombre      string    `json:"nombre_producto"`
	PrecioCosto float64   `json:"precio_costo"`
	PrecioVenta float64   `json:"precio_venta"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProducto crea un nuevo producto
func NewProducto(nombre string, precioCosto, precioVenta float64) (*Producto, error) {
	if nombre == "" {
		return nil, ErrNombreVacio
	}

	if precioCosto < 0 || precioVenta < 0 {
		return nil, ErrPrecioNegativo
	}

	now := time.Now()
	return &Producto{
		ID:          uuid.New().String(),
		Nombre:      nombre,
		PrecioCosto: precioCosto,
		PrecioVenta: precioVenta,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Margen retorna el margen porcentual del producto: (venta - costo) / costo.
// Un precio de venta menor al costo produce un margen negativo; el sistema
// lo tolera y lo reporta tal cual.
func (p *Producto) Margen() float64 {
	if p.PrecioCosto == 0 {
		return 0
	}
	return (p.PrecioVenta - p.PrecioCosto) / p.PrecioCosto
}

// Update actualiza los datos del producto
func (p *Producto) Update(nombre string, precioCosto, precioVenta float64) error {
	if nombre == "" {
		return ErrNombreVacio
	}

	if precioCosto < 0 || precioVenta < 0 {
		return ErrPrecioNegativo
	}

	p.Nombre = nombre
	p.PrecioCosto = precioCosto
	p.PrecioVenta = precioVenta
	p.UpdatedAt = time.Now()

	return nil
}
