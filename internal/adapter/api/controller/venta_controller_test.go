package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalessi/gestor/internal/adapter/api/dto"
	"github.com/khalessi/gestor/internal/domain/pedido"
	"github.com/khalessi/gestor/pkg/logger"
)

func setupVentaRouter(repo *fakePedidoRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	c := NewVentaController(repo, logger.NewLogger())

	r := gin.New()
	r.GET("/ventas", c.List)
	r.GET("/ventas/resumen", c.Resumen)
	return r
}

func TestVentaResumen(t *testing.T) {
	repo := newFakePedidoRepo()
	require.NoError(t, repo.Create(nil, &pedido.Pedido{
		ID:         "p1",
		TotalCosto: 10,
		TotalVenta: 30,
		Estado:     pedido.EstadoEntregado,
		Pago:       pedido.PagoPagado,
	}))
	require.NoError(t, repo.Create(nil, &pedido.Pedido{
		ID:         "p2",
		TotalCosto: 20,
		TotalVenta: 15,
		Estado:     pedido.EstadoPendiente,
		Pago:       pedido.PagoDebe,
	}))

	r := setupVentaRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/ventas/resumen", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resumen dto.ResumenVentasResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumen))

	assert.InDelta(t, 30.0, resumen.TotalCosto, 1e-9)
	assert.InDelta(t, 15.0, resumen.Ganancia, 1e-9)
	assert.InDelta(t, 30.0, resumen.Caja, 1e-9)
}

func TestVentaListIncluyeResumen(t *testing.T) {
	repo := newFakePedidoRepo()
	require.NoError(t, repo.Create(nil, &pedido.Pedido{
		ID:         "p1",
		TotalCosto: 10,
		TotalVenta: 16,
		Estado:     pedido.EstadoEntregado,
		Pago:       pedido.PagoPagado,
	}))

	r := setupVentaRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/ventas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.VentaListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, 1, resp.Total)
	assert.InDelta(t, 6.0, resp.Ventas[0].Ganancia, 1e-9)
	assert.InDelta(t, 16.0, resp.Resumen.Caja, 1e-9)
}

func TestVentaResumenVacio(t *testing.T) {
	r := setupVentaRouter(newFakePedidoRepo())

	req := httptest.NewRequest(http.MethodGet, "/ventas/resumen", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resumen dto.ResumenVentasResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumen))

	assert.Zero(t, resumen.TotalCosto)
	assert.Zero(t, resumen.Ganancia)
	assert.Zero(t, resumen.Caja)
}
