package pedido

import (
	"context"
)

// Repository define la interfaz para operaciones de repositorio de pedidos.
// La creación persiste la cabecera y sus ítems juntos: un pedido y sus
// renglones aparecen completos o no aparecen.
type Repository interface {
	// Create persiste la cabecera del pedido y una fila por ítem en una
	// única transacción
	Create(ctx context.Context, p *Pedido) error

	// FindByID busca un pedido por su ID, con sus ítems cargados
	FindByID(ctx context.Context, id string) (*Pedido, error)

	// List retorna la colección completa de pedidos con sus ítems
	List(ctx context.Context) ([]*Pedido, error)

	// Update reescribe la cabecera completa del pedido
	Update(ctx context.Context, p *Pedido) error

	// UpdateEstado actualiza solo el estado de entrega
	UpdateEstado(ctx context.Context, id string, estado Estado) error

	// UpdatePago actualiza solo el estado de pago
	UpdatePago(ctx context.Context, id string, pago Pago) error

	// Delete elimina el pedido y sus ítems
	Delete(ctx context.Context, id string) error
}
