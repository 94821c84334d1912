package route

import (
	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/controller"
)

// RegisterInsumoRoutes registra las rutas del módulo de insumos de stock
func RegisterInsumoRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, insumoController *controller.InsumoController) {
	insumos := r.Group("/insumos")
	insumos.Use(authMiddleware)
	{
		insumos.POST("", insumoController.Create)
		insumos.GET("", insumoController.List)
		insumos.GET("/:id", insumoController.Get)
		insumos.PUT("/:id", insumoController.Update)
		insumos.DELETE("/:id", insumoController.Delete)
	}
}
