package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/khalessi/gestor/docs"
	"github.com/khalessi/gestor/internal/adapter/api/controller"
	"github.com/khalessi/gestor/internal/adapter/api/route"
	"github.com/khalessi/gestor/internal/adapter/repository"
	"github.com/khalessi/gestor/internal/domain/usuario"
	"github.com/khalessi/gestor/internal/infrastructure/database"
	"github.com/khalessi/gestor/pkg/auth"
	"github.com/khalessi/gestor/pkg/logger"
)

// App representa la aplicación y sus dependencias
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger

	authMiddleware gin.HandlerFunc

	authController     *controller.AuthController
	clienteController  *controller.ClienteController
	productoController *controller.ProductoController
	insumoController   *controller.InsumoController
	pedidoController   *controller.PedidoController
	ventaController    *controller.VentaController
}

// NewApp crea una nueva instancia de la aplicación
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Conectar a la base de datos
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Crear repositorios
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// Configurar autenticación: un único operador con credenciales de entorno
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	operador, err := usuario.NewOperador(
		getEnv("GESTOR_USER", "admin"),
		os.Getenv("GESTOR_PASSWORD"),
		os.Getenv("GESTOR_PASSWORD_HASH"),
	)
	if err != nil {
		return nil, err
	}

	// Crear controllers
	authController := controller.NewAuthController(operador, jwtService, log)
	clienteController := controller.NewClienteController(clienteRepo, log)
	productoController := controller.NewProductoController(productoRepo, log)
	insumoController := controller.NewInsumoController(insumoRepo, log)
	pedidoController := controller.NewPedidoController(pedidoRepo, clienteRepo, productoRepo, log)
	ventaController := controller.NewVentaController(pedidoRepo, log)

	// Configurar router
	router := gin.Default()
	router.Use(corsMiddleware())

	return &App{
		router:             router,
		db:                 db,
		logger:             log,
		authMiddleware:     auth.Middleware(jwtService),
		authController:     authController,
		clienteController:  clienteController,
		productoController: productoController,
		insumoController:   insumoController,
		pedidoController:   pedidoController,
		ventaController:    ventaController,
	}, nil
}

// SetupRoutes configura las rutas de la aplicación
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentación Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterClienteRoutes(api, a.authMiddleware, a.clienteController)
	route.RegisterProductoRoutes(api, a.authMiddleware, a.productoController)
	route.RegisterInsumoRoutes(api, a.authMiddleware, a.insumoController)
	route.RegisterPedidoRoutes(api, a.authMiddleware, a.pedidoController)
	route.RegisterVentaRoutes(api, a.authMiddleware, a.ventaController)
}

// Start inicia el servidor HTTP
func (a *App) Start() error {
	port := getEnv("PORT", "8080")
	a.logger.Info("servidor iniciado", "puerto", port)
	return a.router.Run(":" + port)
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// corsMiddleware construye el middleware CORS según el entorno
func corsMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = strings.Split(origins, ",")
	}

	return cors.New(config)
}

// getEnv retorna el valor de una variable de entorno o un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
