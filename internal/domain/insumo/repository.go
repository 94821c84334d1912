package insumo

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de insumos
type Repository interface {
	// Create crea un nuevo insumo
	Create(ctx context.Context, i *Insumo) error

	// FindByID busca un insumo por su ID
	FindByID(ctx context.Context, id string) (*Insumo, error)

	// List retorna la colección completa de insumos
	List(ctx context.Context) ([]*Insumo, error)

	// Update actualiza los datos de un insumo existente
	Update(ctx context.Context, i *Insumo) error

	// Delete elimina un insumo
	Delete(ctx context.Context, id string) error
}
