package route

import (
	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/controller"
)

// RegisterVentaRoutes registra las rutas del reporte de ventas
func RegisterVentaRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, ventaController *controller.VentaController) {
	ventas := r.Group("/ventas")
	ventas.Use(authMiddleware)
	{
		ventas.GET("", ventaController.List)
		ventas.GET("/resumen", ventaController.Resumen)
	}
}
