package route

import (
	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/controller"
)

// RegisterClienteRoutes registra las rutas del módulo de clientes
func RegisterClienteRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc, clienteController *controller.ClienteController) {
	clientes := r.Group("/clientes")
	clientes.Use(authMiddleware)
	{
		clientes.POST("", clienteController.Create)
		clientes.GET("", clienteController.List)
		clientes.GET("/:id", clienteController.Get)
		clientes.PUT("/:id", clienteController.Update)
		clientes.DELETE("/:id", clienteController.Delete)
	}
}
