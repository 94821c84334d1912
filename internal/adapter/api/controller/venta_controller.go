package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/dto"
	pedidodomain "github.com/khalessi/gestor/internal/domain/pedido"
	ventadomain "github.com/khalessi/gestor/internal/domain/venta"
	"github.com/khalessi/gestor/pkg/logger"
)

// VentaController gestiona el reporte de ventas. Las ventas son una vista
// derivada de los pedidos: no existe almacenamiento propio de ventas.
type VentaController struct {
	pedidoRepo pedidodomain.Repository
	logger     logger.Logger
}

// NewVentaController crea una nueva instancia de VentaController
func NewVentaController(pedidoRepo pedidodomain.Repository, logger logger.Logger) *VentaController {
	return &VentaController{
		pedidoRepo: pedidoRepo,
		logger:     logger,
	}
}

// List retorna el reporte de ventas: una fila por pedido con su ganancia,
// más el resumen agregado
// @Summary Listar ventas
// @Description Retorna todas las ventas derivadas de pedidos, con su resumen (costo total, ganancia y caja)
// @Tags ventas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.VentaListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ventas [get]
func (c *VentaController) List(ctx *gin.Context) {
	pedidos, err := c.pedidoRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar pedidos para el reporte de ventas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar ventas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVentaListResponse(pedidos))
}

// Resumen retorna solo las tres cifras agregadas del reporte de ventas.
// La ganancia suma sobre todos los pedidos; la caja solo sobre los pedidos
// pagados y entregados.
// @Summary Resumen de ventas
// @Description Retorna el costo total, la ganancia y la caja acumulados
// @Tags ventas
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ResumenVentasResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ventas/resumen [get]
func (c *VentaController) Resumen(ctx *gin.Context) {
	pedidos, err := c.pedidoRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar pedidos para el resumen de ventas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al calcular el resumen", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToResumenVentasResponse(ventadomain.Resumir(pedidos)))
}
