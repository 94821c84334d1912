package producto

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de productos
type Repository interface {
	// Create crea un nuevo producto
	Create(ctx context.Context, p *Producto) error

	// FindByID busca un producto por su ID
	FindByID(ctx context.Context, id string) (*Producto, error)

	// List retorna la colección completa de productos
	List(ctx context.Context) ([]*Producto, error)

	// Update actualiza los datos de un producto existente
	Update(ctx context.Context, p *Producto) error

	// Delete elimina un producto. Si el producto está referenciado por
	// ítems de pedidos existentes retorna ErrProductoEnUso del repositorio.
	Delete(ctx context.Context, id string) error
}
