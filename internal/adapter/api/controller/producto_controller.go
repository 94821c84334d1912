package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/dto"
	"github.com/khalessi/gestor/internal/adapter/repository"
	productodomain "github.com/khalessi/gestor/internal/domain/producto"
	"github.com/khalessi/gestor/pkg/logger"
)

// ProductoController gestiona las peticiones relacionadas con productos
type ProductoController struct {
	productoRepo productodomain.Repository
	logger       logger.Logger
}

// NewProductoController crea una nueva instancia de ProductoController
func NewProductoController(productoRepo productodomain.Repository, logger logger.Logger) *ProductoController {
	return &ProductoController{
		productoRepo: productoRepo,
		logger:       logger,
	}
}

// Create crea un nuevo producto
// @Summary Crear producto
// @Description Crea un nuevo producto en el sistema
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param producto body dto.ProductoRequest true "Datos del producto"
// @Success 201 {object} dto.ProductoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos [post]
func (c *ProductoController) Create(ctx *gin.Context) {
	var req dto.ProductoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	producto, err := productodomain.NewProducto(req.Nombre, *req.PrecioCosto, *req.PrecioVenta)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el producto", err.Error()))
		return
	}

	if err := c.productoRepo.Create(ctx, producto); err != nil {
		c.logger.Error("error al crear el producto en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductoResponse(producto))
}

// Get retorna un producto por su ID
// @Summary Buscar producto
// @Description Retorna los datos de un producto por su ID
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductoResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos/{id} [get]
func (c *ProductoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	producto, err := c.productoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "producto no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductoResponse(producto))
}

// List retorna la colección completa de productos
// @Summary Listar productos
// @Description Retorna la colección completa de productos
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ProductoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos [get]
func (c *ProductoController) List(ctx *gin.Context) {
	productos, err := c.productoRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar productos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar productos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductoListResponse(productos))
}

// Update actualiza los datos de un producto
// @Summary Actualizar producto
// @Description Actualiza los datos de un producto existente. Los precios ya congelados en pedidos no cambian.
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Param producto body dto.ProductoRequest true "Datos del producto"
// @Success 200 {object} dto.ProductoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos/{id} [put]
func (c *ProductoController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ProductoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	producto, err := c.productoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "producto no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el producto", err.Error()))
		return
	}

	if err := producto.Update(req.Nombre, *req.PrecioCosto, *req.PrecioVenta); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar los datos del producto", err.Error()))
		return
	}

	if err := c.productoRepo.Update(ctx, producto); err != nil {
		c.logger.Error("error al actualizar el producto en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductoResponse(producto))
}

// Delete elimina un producto. Si el producto está referenciado por ítems de
// pedidos existentes la eliminación se rechaza con un mensaje específico.
// @Summary Eliminar producto
// @Description Elimina un producto del sistema. Falla con 409 si el producto está en uso por pedidos.
// @Tags productos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /productos/{id} [delete]
func (c *ProductoController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.productoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductoEnUso) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "el producto está referenciado por pedidos existentes y no puede eliminarse", err.Error()))
			return
		}
		if errors.Is(err, repository.ErrProductoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "producto no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al eliminar el producto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el producto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("producto eliminado", nil))
}
