package route

import (
	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra las rutas de autenticación
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		// La ruta de login no requiere autenticación
		auth.POST("/login", authController.Login)
	}
}
