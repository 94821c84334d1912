package cliente

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de clientes
type Repository interface {
	// Create crea un nuevo cliente
	Create(ctx context.Context, c *Cliente) error

	// FindByID busca un cliente por su ID
	FindByID(ctx context.Context, id string) (*Cliente, error)

	// List retorna la colección completa de clientes
	List(ctx context.Context) ([]*Cliente, error)

	// Update actualiza los datos de un cliente existente
	Update(ctx context.Context, c *Cliente) error

	// Delete elimina un cliente
	Delete(ctx context.Context, id string) error
}
