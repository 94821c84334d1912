package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khalessi/gestor/internal/domain/producto"
)

// Errores específicos del repositorio
var (
	ErrProductoNotFound = errors.New("producto no encontrado")

	// ErrProductoEnUso señala que el producto está referenciado por ítems
	// de pedidos existentes y no puede eliminarse
	ErrProductoEnUso = errors.New("el producto está referenciado por pedidos existentes y no puede eliminarse")
)

// ProductoRepository implementa la interfaz producto.Repository
type ProductoRepository struct {
	db *pgxpool.Pool
}

// NewProductoRepository crea una nueva instancia de ProductoRepository
func NewProductoRepository(db *pgxpool.Pool) producto.Repository {
	return &ProductoRepository{
		db: db,
	}
}

// Create implementa producto.Repository.Create
func (r *ProductoRepository) Create(ctx context.Context, p *producto.Producto) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO productos (
			id, nombre, precio_costo, precio_venta, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING id, nombre, precio_costo, precio_venta, created_at, updated_at`,
		p.ID, p.Nombre, p.PrecioCosto, p.PrecioVenta, p.CreatedAt, p.UpdatedAt).Scan(
		&p.ID, &p.Nombre, &p.PrecioCosto, &p.PrecioVenta, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error al crear el producto: %w", err)
	}

	return nil
}

// FindByID implementa producto.Repository.FindByID
func (r *ProductoRepository) FindByID(ctx context.Context, id string) (*producto.Producto, error) {
	var p producto.Producto

	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, precio_costo, precio_venta, created_at, updated_at
		FROM productos WHERE id = $1`,
		id).Scan(
		&p.ID, &p.Nombre, &p.PrecioCosto, &p.PrecioVenta, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductoNotFound
		}
		return nil, fmt.Errorf("error al buscar el producto: %w", err)
	}

	return &p, nil
}

// List implementa producto.Repository.List
func (r *ProductoRepository) List(ctx context.Context) ([]*producto.Producto, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nombre, precio_costo, precio_venta, created_at, updated_at
		FROM productos
		ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("error al listar productos: %w", err)
	}
	defer rows.Close()

	productos := make([]*producto.Producto, 0)

	for rows.Next() {
		var p producto.Producto

		err := rows.Scan(
			&p.ID, &p.Nombre, &p.PrecioCosto, &p.PrecioVenta, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer el producto: %w", err)
		}

		productos = append(productos, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer los resultados: %w", err)
	}

	return productos, nil
}

// Update implementa producto.Repository.Update. Actualizar el precio de un
// producto no toca los precios unitarios ya congelados en los pedidos.
func (r *ProductoRepository) Update(ctx context.Context, p *producto.Producto) error {
	err := r.db.QueryRow(ctx,
		`UPDATE productos SET
			nombre = $1, precio_costo = $2, precio_venta = $3, updated_at = $4
		WHERE id = $5
		RETURNING id, nombre, precio_costo, precio_venta, created_at, updated_at`,
		p.Nombre, p.PrecioCosto, p.PrecioVenta, p.UpdatedAt, p.ID).Scan(
		&p.ID, &p.Nombre, &p.PrecioCosto, &p.PrecioVenta, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrProductoNotFound
		}
		return fmt.Errorf("error al actualizar el producto: %w", err)
	}

	return nil
}

// Delete implementa producto.Repository.Delete. Una violación de clave
// foránea del backend se traduce al error de dominio ErrProductoEnUso.
func (r *ProductoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM productos WHERE id = $1", id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return ErrProductoEnUso
		}
		return fmt.Errorf("error al eliminar el producto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductoNotFound
	}

	return nil
}
