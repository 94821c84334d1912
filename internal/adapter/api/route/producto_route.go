package route

import (
	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/controller"
)

// RegisterProductoRoutes registra las rutas del módulo de productos
func RegisterProductoRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, productoController *controller.ProductoController) {
	productos := r.Group("/productos")
	productos.Use(authMiddleware)
	{
		productos.POST("", productoController.Create)
		productos.GET("", productoController.List)
		productos.GET("/:id", productoController.Get)
		productos.PUT("/:id", productoController.Update)
		productos.DELETE("/:id", productoController.Delete)
	}
}
