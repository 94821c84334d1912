package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/khalessi/gestor/internal/infrastructure/database"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: archivo .env no encontrado: %v", err)
	}

	// Aplicar migraciones al arrancar si está configurado
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := database.RunMigrations(); err != nil {
			log.Fatalf("Error al aplicar las migraciones: %v", err)
		}
	}

	// Crear la aplicación
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Error al inicializar la aplicación: %v", err)
	}
	defer app.Close()

	app.SetupRoutes("/api/v1")

	// Iniciar el servidor
	if err := app.Start(); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
