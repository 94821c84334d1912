package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/dto"
	usuariodomain "github.com/khalessi/gestor/internal/domain/usuario"
	"github.com/khalessi/gestor/pkg/auth"
	"github.com/khalessi/gestor/pkg/logger"
)

// AuthController gestiona el inicio de sesión del operador
type AuthController struct {
	operador   *usuariodomain.Operador
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController crea una nueva instancia de AuthController
func NewAuthController(operador *usuariodomain.Operador, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		operador:   operador,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login autentica al operador y emite un token JWT
// @Summary Iniciar sesión
// @Description Autentica al operador del sistema y retorna un token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciales body dto.LoginRequest true "Credenciales del operador"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if err := c.operador.Verificar(req.Usuario, req.Contrasena); err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciales incorrectas", ""))
		return
	}

	token, expiresAt, err := c.jwtService.GenerateToken(req.Usuario)
	if err != nil {
		c.logger.Error("error al generar el token de sesión", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al iniciar sesión", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Usuario:   req.Usuario,
	})
}
