package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/khalessi/gestor/internal/infrastructure/database"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	// Crear conexión con la base de datos
	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Error al conectar con la base de datos: %v", err)
	}
	defer db.Close()

	// Ejecutar las migraciones
	if err := runMigrations(db); err != nil {
		log.Fatalf("Error al ejecutar las migraciones: %v", err)
	}

	log.Println("Migraciones ejecutadas con éxito")
}

func runMigrations(db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	conn, err := db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("error al obtener conexión: %w", err)
	}
	defer conn.Release()

	// Verificar que exista la tabla de migraciones
	if err := createMigrationsTable(ctx, conn); err != nil {
		return fmt.Errorf("error al crear la tabla de migraciones: %w", err)
	}

	// Verificar la última migración ejecutada
	lastMigration, err := getLastMigration(ctx, conn)
	if err != nil {
		return fmt.Errorf("error al verificar la última migración: %w", err)
	}

	log.Printf("Última migración ejecutada: %s", lastMigration)

	// Lista de migraciones
	migrations := []migration{
		{
			version: "001_crear_clientes",
			up: `
				-- Tabla de clientes
				CREATE TABLE IF NOT EXISTS clientes (
					id UUID PRIMARY KEY,
					nombre VARCHAR(255) NOT NULL,
					apellido VARCHAR(255) NOT NULL,
					direccion VARCHAR(255),
					telefono VARCHAR(50),
					email VARCHAR(255),
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_clientes_apellido ON clientes(apellido);
			`,
		},
		{
			version: "002_crear_productos",
			up: `
				-- Tabla de productos
				CREATE TABLE IF NOT EXISTS productos (
					id UUID PRIMARY KEY,
					nombre VARCHAR(255) NOT NULL,
					precio_costo DECIMAL(15,2) NOT NULL,
					precio_venta DECIMAL(15,2) NOT NULL,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_productos_nombre ON productos(nombre);
			`,
		},
		{
			version: "003_crear_insumos",
			up: `
				-- Tabla de insumos de stock
				CREATE TABLE IF NOT EXISTS insumos (
					id UUID PRIMARY KEY,
					nombre VARCHAR(255) NOT NULL,
					precio_costo DECIMAL(15,2) NOT NULL,
					cantidad INTEGER NOT NULL DEFAULT 0,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_insumos_nombre ON insumos(nombre);
			`,
		},
		{
			version: "004_crear_pedidos",
			up: `
				-- Tabla de pedidos (cabecera)
				CREATE TABLE IF NOT EXISTS pedidos (
					id UUID PRIMARY KEY,
					id_cliente UUID NOT NULL REFERENCES clientes(id),
					fecha DATE NOT NULL,
					total_costo DECIMAL(15,2) NOT NULL,
					total_venta DECIMAL(15,2) NOT NULL,
					estado VARCHAR(20) NOT NULL,
					pago VARCHAR(20) NOT NULL,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Tabla de líneas del pedido. Un mismo producto puede aparecer
				-- en más de una línea del mismo pedido, por eso la clave es un
				-- secuencial propio y no el par (pedido, producto).
				CREATE TABLE IF NOT EXISTS pedidos_productos (
					id BIGSERIAL PRIMARY KEY,
					id_pedido UUID NOT NULL REFERENCES pedidos(id),
					id_producto UUID NOT NULL REFERENCES productos(id) ON DELETE RESTRICT,
					cantidad INTEGER NOT NULL CHECK (cantidad > 0),
					precio_unitario DECIMAL(15,2) NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_pedidos_id_cliente ON pedidos(id_cliente);
				CREATE INDEX IF NOT EXISTS idx_pedidos_fecha ON pedidos(fecha);
				CREATE INDEX IF NOT EXISTS idx_pedidos_estado ON pedidos(estado);
				CREATE INDEX IF NOT EXISTS idx_pedidos_pago ON pedidos(pago);
				CREATE INDEX IF NOT EXISTS idx_pedidos_productos_id_pedido ON pedidos_productos(id_pedido);
				CREATE INDEX IF NOT EXISTS idx_pedidos_productos_id_producto ON pedidos_productos(id_producto);
			`,
		},
	}

	// Ejecutar migraciones pendientes
	for _, m := range migrations {
		if m.version <= lastMigration {
			log.Printf("Omitiendo migración %s (ya ejecutada)", m.version)
			continue
		}

		log.Printf("Ejecutando migración %s", m.version)

		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("error al iniciar la transacción: %w", err)
		}

		_, err = tx.Exec(ctx, m.up)
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("error al hacer rollback: %v", rbErr)
			}
			return fmt.Errorf("error al ejecutar la migración %s: %w", m.version, err)
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO migrations (version, executed_at) VALUES ($1, $2)",
			m.version, time.Now())
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("error al hacer rollback: %v", rbErr)
			}
			return fmt.Errorf("error al registrar la migración %s: %w", m.version, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("error al hacer commit de la migración %s: %w", m.version, err)
		}

		log.Printf("Migración %s ejecutada con éxito", m.version)
	}

	return nil
}

func createMigrationsTable(ctx context.Context, conn *pgxpool.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(100) PRIMARY KEY,
			executed_at TIMESTAMP NOT NULL
		)
	`
	_, err := conn.Exec(ctx, query)
	return err
}

func getLastMigration(ctx context.Context, conn *pgxpool.Conn) (string, error) {
	var version string
	err := conn.QueryRow(ctx,
		"SELECT version FROM migrations ORDER BY executed_at DESC LIMIT 1").Scan(&version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return version, nil
}

type migration struct {
	version string
	up      string
}
