package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khalessi/gestor/internal/domain/cliente"
)

// Errores específicos del repositorio
var (
	ErrClienteNotFound      = errors.New("cliente no encontrado")
	ErrClienteDatabaseError = errors.New("error de base de datos")
)

// ClienteRepository implementa la interfaz cliente.Repository
type ClienteRepository struct {
	db *pgxpool.Pool
}

// NewClienteRepository crea una nueva instancia de ClienteRepository
func NewClienteRepository(db *pgxpool.Pool) cliente.Repository {
	return &ClienteRepository{
		db: db,
	}
}

// Create implementa cliente.Repository.Create. La fila insertada se relee
// con RETURNING para que la respuesta refleje lo efectivamente persistido.
func (r *ClienteRepository) Create(ctx context.Context, c *cliente.Cliente) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO clientes (
			id, nombre, apellido, direccion, telefono, email, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id, nombre, apellido, direccion, telefono, email, created_at, updated_at`,
		c.ID, c.Nombre, c.Apellido, c.Direccion, c.Telefono, c.Email,
		c.CreatedAt, c.UpdatedAt).Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Direccion, &c.Telefono, &c.Email,
		&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error al crear el cliente: %w", err)
	}

	return nil
}

// FindByID implementa cliente.Repository.FindByID
func (r *ClienteRepository) FindByID(ctx context.Context, id string) (*cliente.Cliente, error) {
	var c cliente.Cliente

	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, apellido, direccion, telefono, email, created_at, updated_at
		FROM clientes WHERE id = $1`,
		id).Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Direccion, &c.Telefono, &c.Email,
		&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClienteNotFound
		}
		return nil, fmt.Errorf("error al buscar el cliente: %w", err)
	}

	return &c, nil
}

// List implementa cliente.Repository.List
func (r *ClienteRepository) List(ctx context.Context) ([]*cliente.Cliente, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nombre, apellido, direccion, telefono, email, created_at, updated_at
		FROM clientes
		ORDER BY apellido ASC, nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("error al listar clientes: %w", err)
	}
	defer rows.Close()

	clientes := make([]*cliente.Cliente, 0)

	for rows.Next() {
		var c cliente.Cliente

		err := rows.Scan(
			&c.ID, &c.Nombre, &c.Apellido, &c.Direccion, &c.Telefono, &c.Email,
			&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error al leer el cliente: %w", err)
		}

		clientes = append(clientes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer los resultados: %w", err)
	}

	return clientes, nil
}

// Update implementa cliente.Repository.Update
func (r *ClienteRepository) Update(ctx context.Context, c *cliente.Cliente) error {
	err := r.db.QueryRow(ctx,
		`UPDATE clientes SET
			nombre = $1, apellido = $2, direccion = $3, telefono = $4,
			email = $5, updated_at = $6
		WHERE id = $7
		RETURNING id, nombre, apellido, direccion, telefono, email, created_at, updated_at`,
		c.Nombre, c.Apellido, c.Direccion, c.Telefono, c.Email, c.UpdatedAt,
		c.ID).Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Direccion, &c.Telefono, &c.Email,
		&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrClienteNotFound
		}
		return fmt.Errorf("error al actualizar el cliente: %w", err)
	}

	return nil
}

// Delete implementa cliente.Repository.Delete
func (r *ClienteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clientes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar el cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClienteNotFound
	}

	return nil
}
