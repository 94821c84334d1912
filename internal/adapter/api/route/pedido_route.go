package route

import (
	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/controller"
)

// RegisterPedidoRoutes registra las rutas del módulo de pedidos
func RegisterPedidoRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, pedidoController *controller.PedidoController) {
	pedidos := r.Group("/pedidos")
	pedidos.Use(authMiddleware)
	{
		pedidos.POST("", pedidoController.Create)
		pedidos.GET("", pedidoController.List)
		pedidos.GET("/:id", pedidoController.Get)
		pedidos.PUT("/:id", pedidoController.Update)
		pedidos.PATCH("/:id/estado", pedidoController.UpdateEstado)
		pedidos.PATCH("/:id/pago", pedidoController.UpdatePago)
		pedidos.DELETE("/:id", pedidoController.Delete)
	}
}
