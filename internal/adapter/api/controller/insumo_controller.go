package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/dto"
	"github.com/khalessi/gestor/internal/adapter/repository"
	insumodomain "github.com/khalessi/gestor/internal/domain/insumo"
	"github.com/khalessi/gestor/pkg/logger"
)

// InsumoController gestiona las peticiones relacionadas con insumos de stock
type InsumoController struct {
	insumoRepo insumodomain.Repository
	logger     logger.Logger
}

// NewInsumoController crea una nueva instancia de InsumoController
func NewInsumoController(insumoRepo insumodomain.Repository, logger logger.Logger) *InsumoController {
	return &InsumoController{
		insumoRepo: insumoRepo,
		logger:     logger,
	}
}

// Create crea un nuevo insumo
// @Summary Crear insumo
// @Description Crea un nuevo insumo de stock en el sistema
// @Tags insumos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param insumo body dto.InsumoRequest true "Datos del insumo"
// @Success 201 {object} dto.InsumoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insumos [post]
func (c *InsumoController) Create(ctx *gin.Context) {
	var req dto.InsumoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	insumo, err := insumodomain.NewInsumo(req.Nombre, *req.PrecioCosto, *req.Cantidad)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el insumo", err.Error()))
		return
	}

	if err := c.insumoRepo.Create(ctx, insumo); err != nil {
		c.logger.Error("error al crear el insumo en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el insumo", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInsumoResponse(insumo))
}

// Get retorna un insumo por su ID
// @Summary Buscar insumo
// @Description Retorna los datos de un insumo por su ID
// @Tags insumos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del insumo"
// @Success 200 {object} dto.InsumoResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insumos/{id} [get]
func (c *InsumoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	insumo, err := c.insumoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInsumoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "insumo no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el insumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el insumo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsumoResponse(insumo))
}

// List retorna la colección completa de insumos
// @Summary Listar insumos
// @Description Retorna la colección completa de insumos, con advertencia de stock bajo
// @Tags insumos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.InsumoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insumos [get]
func (c *InsumoController) List(ctx *gin.Context) {
	insumos, err := c.insumoRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar insumos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar insumos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsumoListResponse(insumos))
}

// Update actualiza los datos de un insumo
// @Summary Actualizar insumo
// @Description Actualiza los datos de un insumo existente
// @Tags insumos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del insumo"
// @Param insumo body dto.InsumoRequest true "Datos del insumo"
// @Success 200 {object} dto.InsumoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insumos/{id} [put]
func (c *InsumoController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.InsumoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	insumo, err := c.insumoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInsumoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "insumo no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el insumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el insumo", err.Error()))
		return
	}

	if err := insumo.Update(req.Nombre, *req.PrecioCosto, *req.Cantidad); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar los datos del insumo", err.Error()))
		return
	}

	if err := c.insumoRepo.Update(ctx, insumo); err != nil {
		c.logger.Error("error al actualizar el insumo en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el insumo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsumoResponse(insumo))
}

// Delete elimina un insumo
// @Summary Eliminar insumo
// @Description Elimina un insumo del sistema
// @Tags insumos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del insumo"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insumos/{id} [delete]
func (c *InsumoController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.insumoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInsumoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "insumo no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al eliminar el insumo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el insumo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("insumo eliminado", nil))
}
