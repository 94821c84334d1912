package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khalessi/gestor/internal/domain/pedido"
	"github.com/khalessi/gestor/internal/infrastructure/database"
)

// Errores específicos del repositorio
var (
	ErrPedidoNotFound = errors.New("pedido no encontrado")
)

// PedidoRepository implementa la interfaz pedido.Repository
type PedidoRepository struct {
	db *pgxpool.Pool
}

// NewPedidoRepository crea una nueva instancia de PedidoRepository
func NewPedidoRepository(db *pgxpool.Pool) pedido.Repository {
	return &PedidoRepository{
		db: db,
	}
}

// Create implementa pedido.Repository.Create. La cabecera y sus ítems se
// escriben dentro de una misma transacción: si falla la inserción de un
// ítem no queda una cabecera huérfana.
func (r *PedidoRepository) Create(ctx context.Context, p *pedido.Pedido) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO pedidos (
				id, id_cliente, fecha, total_costo, total_venta, estado, pago,
				created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9
			)`,
			p.ID, p.IDCliente, p.Fecha, p.TotalCosto, p.TotalVenta,
			p.Estado, p.Pago, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error al crear el pedido: %w", err)
		}

		for _, item := range p.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO pedidos_productos (
					id_pedido, id_producto, cantidad, precio_unitario
				) VALUES (
					$1, $2, $3, $4
				)`,
				item.IDPedido, item.IDProducto, item.Cantidad, item.PrecioUnitario)
			if err != nil {
				return fmt.Errorf("error al crear el ítem del pedido: %w", err)
			}
		}

		return nil
	})
}

// FindByID implementa pedido.Repository.FindByID
func (r *PedidoRepository) FindByID(ctx context.Context, id string) (*pedido.Pedido, error) {
	var p pedido.Pedido

	err := r.db.QueryRow(ctx,
		`SELECT id, id_cliente, fecha, total_costo, total_venta, estado, pago,
			created_at, updated_at
		FROM pedidos WHERE id = $1`,
		id).Scan(
		&p.ID, &p.IDCliente, &p.Fecha, &p.TotalCosto, &p.TotalVenta,
		&p.Estado, &p.Pago, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPedidoNotFound
		}
		return nil, fmt.Errorf("error al buscar el pedido: %w", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Items = items

	return &p, nil
}

// List implementa pedido.Repository.List. Los ítems de todos los pedidos se
// cargan en una sola consulta y se agrupan por pedido.
func (r *PedidoRepository) List(ctx context.Context) ([]*pedido.Pedido, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, id_cliente, fecha, total_costo, total_venta, estado, pago,
			created_at, updated_at
		FROM pedidos
		ORDER BY fecha DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error al listar pedidos: %w", err)
	}
	defer rows.Close()

	pedidos := make([]*pedido.Pedido, 0)
	porID := make(map[string]*pedido.Pedido)

	for rows.Next() {
		var p pedido.Pedido

		err := rows.Scan(
			&p.ID, &p.IDCliente, &p.Fecha, &p.TotalCosto, &p.TotalVenta,
			&p.Estado, &p.Pago, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer el pedido: %w", err)
		}

		p.Items = make([]pedido.Item, 0)
		pedidos = append(pedidos, &p)
		porID[p.ID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer los resultados: %w", err)
	}

	itemRows, err := r.db.Query(ctx,
		`SELECT pp.id_pedido, pp.id_producto, pr.nombre, pp.cantidad, pp.precio_unitario
		FROM pedidos_productos pp
		JOIN productos pr ON pr.id = pp.id_producto
		ORDER BY pp.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error al listar los ítems de los pedidos: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item pedido.Item

		err := itemRows.Scan(
			&item.IDPedido, &item.IDProducto, &item.NombreProducto,
			&item.Cantidad, &item.PrecioUnitario)
		if err != nil {
			return nil, fmt.Errorf("error al leer el ítem del pedido: %w", err)
		}

		if p, ok := porID[item.IDPedido]; ok {
			p.Items = append(p.Items, item)
		}
	}

	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer los resultados: %w", err)
	}

	return pedidos, nil
}

// Update implementa pedido.Repository.Update. Reescribe la cabecera completa
// del pedido; los ítems no se modifican después de la creación.
func (r *PedidoRepository) Update(ctx context.Context, p *pedido.Pedido) error {
	err := r.db.QueryRow(ctx,
		`UPDATE pedidos SET
			id_cliente = $1, fecha = $2, total_costo = $3, total_venta = $4,
			estado = $5, pago = $6, updated_at = $7
		WHERE id = $8
		RETURNING id, id_cliente, fecha, total_costo, total_venta, estado, pago,
			created_at, updated_at`,
		p.IDCliente, p.Fecha, p.TotalCosto, p.TotalVenta, p.Estado, p.Pago,
		p.UpdatedAt, p.ID).Scan(
		&p.ID, &p.IDCliente, &p.Fecha, &p.TotalCosto, &p.TotalVenta,
		&p.Estado, &p.Pago, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPedidoNotFound
		}
		return fmt.Errorf("error al actualizar el pedido: %w", err)
	}

	return nil
}

// UpdateEstado implementa pedido.Repository.UpdateEstado
func (r *PedidoRepository) UpdateEstado(ctx context.Context, id string, estado pedido.Estado) error {
	result, err := r.db.Exec(ctx,
		"UPDATE pedidos SET estado = $1, updated_at = now() WHERE id = $2",
		estado, id)

	if err != nil {
		return fmt.Errorf("error al actualizar el estado del pedido: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPedidoNotFound
	}

	return nil
}

// UpdatePago implementa pedido.Repository.UpdatePago
func (r *PedidoRepository) UpdatePago(ctx context.Context, id string, pago pedido.Pago) error {
	result, err := r.db.Exec(ctx,
		"UPDATE pedidos SET pago = $1, updated_at = now() WHERE id = $2",
		pago, id)

	if err != nil {
		return fmt.Errorf("error al actualizar el pago del pedido: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPedidoNotFound
	}

	return nil
}

// Delete implementa pedido.Repository.Delete. Los ítems y la cabecera se
// eliminan dentro de la misma transacción.
func (r *PedidoRepository) Delete(ctx context.Context, id string) error {
	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, "DELETE FROM pedidos_productos WHERE id_pedido = $1", id)
		if err != nil {
			return fmt.Errorf("error al eliminar los ítems del pedido: %w", err)
		}

		result, err := tx.Exec(ctx, "DELETE FROM pedidos WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("error al eliminar el pedido: %w", err)
		}

		if result.RowsAffected() == 0 {
			return ErrPedidoNotFound
		}

		return nil
	})
}

// findItems carga los ítems de un pedido desde la colección de unión
func (r *PedidoRepository) findItems(ctx context.Context, idPedido string) ([]pedido.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT pp.id_pedido, pp.id_producto, pr.nombre, pp.cantidad, pp.precio_unitario
		FROM pedidos_productos pp
		JOIN productos pr ON pr.id = pp.id_producto
		WHERE pp.id_pedido = $1
		ORDER BY pp.id ASC`,
		idPedido)
	if err != nil {
		return nil, fmt.Errorf("error al buscar los ítems del pedido: %w", err)
	}
	defer rows.Close()

	items := make([]pedido.Item, 0)

	for rows.Next() {
		var item pedido.Item

		err := rows.Scan(
			&item.IDPedido, &item.IDProducto, &item.NombreProducto,
			&item.Cantidad, &item.PrecioUnitario)
		if err != nil {
			return nil, fmt.Errorf("error al leer el ítem del pedido: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer los resultados: %w", err)
	}

	return items, nil
}
