package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalessi/gestor/internal/domain/producto"
	"github.com/khalessi/gestor/pkg/logger"
)

func setupProductoRouter(repo *fakeProductoRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	c := NewProductoController(repo, logger.NewLogger())

	r := gin.New()
	r.POST("/productos", c.Create)
	r.GET("/productos", c.List)
	r.GET("/productos/:id", c.Get)
	r.PUT("/productos/:id", c.Update)
	r.DELETE("/productos/:id", c.Delete)
	return r
}

func TestProductoCreate(t *testing.T) {
	repo := newFakeProductoRepo()
	r := setupProductoRouter(repo)

	w := postJSON(t, r, http.MethodPost, "/productos", map[string]interface{}{
		"nombre_producto": "Torta",
		"precio_costo":    10,
		"precio_venta":    16,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, repo.productos, 1)
}

func TestProductoCreatePrecioCeroEsValido(t *testing.T) {
	repo := newFakeProductoRepo()
	r := setupProductoRouter(repo)

	w := postJSON(t, r, http.MethodPost, "/productos", map[string]interface{}{
		"nombre_producto": "Muestra",
		"precio_costo":    0,
		"precio_venta":    0,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestProductoCreatePrecioNegativo(t *testing.T) {
	repo := newFakeProductoRepo()
	r := setupProductoRouter(repo)

	w := postJSON(t, r, http.MethodPost, "/productos", map[string]interface{}{
		"nombre_producto": "Torta",
		"precio_costo":    -1,
		"precio_venta":    16,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.productos)
}

func TestProductoDeleteEnUso(t *testing.T) {
	repo := newFakeProductoRepo()

	torta, err := producto.NewProducto("Torta", 10, 16)
	require.NoError(t, err)
	require.NoError(t, repo.Create(nil, torta))
	repo.enUso[torta.ID] = true

	r := setupProductoRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/productos/"+torta.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	// El rechazo no altera la colección
	assert.Len(t, repo.productos, 1)
}

func TestProductoDelete(t *testing.T) {
	repo := newFakeProductoRepo()

	torta, err := producto.NewProducto("Torta", 10, 16)
	require.NoError(t, err)
	require.NoError(t, repo.Create(nil, torta))

	r := setupProductoRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/productos/"+torta.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.productos)
}

func TestProductoUpdateInexistente(t *testing.T) {
	r := setupProductoRouter(newFakeProductoRepo())

	w := postJSON(t, r, http.MethodPut, "/productos/nope", map[string]interface{}{
		"nombre_producto": "Torta",
		"precio_costo":    10,
		"precio_venta":    16,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
