package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalessi/gestor/internal/adapter/api/dto"
	"github.com/khalessi/gestor/internal/domain/usuario"
	"github.com/khalessi/gestor/pkg/auth"
	"github.com/khalessi/gestor/pkg/logger"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "clave-de-prueba")

	gin.SetMode(gin.TestMode)

	jwtService, err := auth.NewJWTService()
	require.NoError(t, err)

	operador, err := usuario.NewOperador("admin", "secreto", "")
	require.NoError(t, err)

	c := NewAuthController(operador, jwtService, logger.NewLogger())

	r := gin.New()
	r.POST("/auth/login", c.Login)
	return r
}

func TestLogin(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{
		Usuario:    "admin",
		Contrasena: "secreto",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Usuario)
}

func TestLoginCredencialesIncorrectas(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, http.MethodPost, "/auth/login", dto.LoginRequest{
		Usuario:    "admin",
		Contrasena: "otra",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginDatosIncompletos(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, http.MethodPost, "/auth/login", map[string]string{"usuario": "admin"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
