package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khalessi/gestor/internal/domain/insumo"
)

// Errores específicos del repositorio
var (
	ErrInsumoNotFound = errors.New("insumo no encontrado")
)

// InsumoRepository implementa la interfaz insumo.Repository
type InsumoRepository struct {
	db *pgxpool.Pool
}

// NewInsumoRepository crea una nueva instancia de InsumoRepository
func NewInsumoRepository(db *pgxpool.Pool) insumo.Repository {
	return &InsumoRepository{
		db: db,
	}
}

// Create implementa insumo.Repository.Create
func (r *InsumoRepository) Create(ctx context.Context, i *insumo.Insumo) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO insumos (
			id, nombre, precio_costo, cantidad, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING id, nombre, precio_costo, cantidad, created_at, updated_at`,
		i.ID, i.Nombre, i.PrecioCosto, i.Cantidad, i.CreatedAt, i.UpdatedAt).Scan(
		&i.ID, &i.Nombre, &i.PrecioCosto, &i.Cantidad, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error al crear el insumo: %w", err)
	}

	return nil
}

// FindByID implementa insumo.Repository.FindByID
func (r *InsumoRepository) FindByID(ctx context.Context, id string) (*insumo.Insumo, error) {
	var i insumo.Insumo

	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, precio_costo, cantidad, created_at, updated_at
		FROM insumos WHERE id = $1`,
		id).Scan(
		&i.ID, &i.Nombre, &i.PrecioCosto, &i.Cantidad, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInsumoNotFound
		}
		return nil, fmt.Errorf("error al buscar el insumo: %w", err)
	}

	return &i, nil
}

// List implementa insumo.Repository.List
func (r *InsumoRepository) List(ctx context.Context) ([]*insumo.Insumo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nombre, precio_costo, cantidad, created_at, updated_at
		FROM insumos
		ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("error al listar insumos: %w", err)
	}
	defer rows.Close()

	insumos := make([]*insumo.Insumo, 0)

	for rows.Next() {
		var i insumo.Insumo

		err := rows.Scan(
			&i.ID, &i.Nombre, &i.PrecioCosto, &i.Cantidad, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer el insumo: %w", err)
		}

		insumos = append(insumos, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer los resultados: %w", err)
	}

	return insumos, nil
}

// Update implementa insumo.Repository.Update
func (r *InsumoRepository) Update(ctx context.Context, i *insumo.Insumo) error {
	err := r.db.QueryRow(ctx,
		`UPDATE insumos SET
			nombre = $1, precio_costo = $2, cantidad = $3, updated_at = $4
		WHERE id = $5
		RETURNING id, nombre, precio_costo, cantidad, created_at, updated_at`,
		i.Nombre, i.PrecioCosto, i.Cantidad, i.UpdatedAt, i.ID).Scan(
		&i.ID, &i.Nombre, &i.PrecioCosto, &i.Cantidad, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrInsumoNotFound
		}
		return fmt.Errorf("error al actualizar el insumo: %w", err)
	}

	return nil
}

// Delete implementa insumo.Repository.Delete
func (r *InsumoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM insumos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar el insumo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrInsumoNotFound
	}

	return nil
}
