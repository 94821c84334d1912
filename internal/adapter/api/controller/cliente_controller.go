package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/dto"
	"github.com/khalessi/gestor/internal/adapter/repository"
	clientedomain "github.com/khalessi/gestor/internal/domain/cliente"
	"github.com/khalessi/gestor/pkg/logger"
)

// ClienteController gestiona las peticiones relacionadas con clientes
type ClienteController struct {
	clienteRepo clientedomain.Repository
	logger      logger.Logger
}

// NewClienteController crea una nueva instancia de ClienteController
func NewClienteController(clienteRepo clientedomain.Repository, logger logger.Logger) *ClienteController {
	return &ClienteController{
		clienteRepo: clienteRepo,
		logger:      logger,
	}
}

// Create crea un nuevo cliente
// @Summary Crear cliente
// @Description Crea un nuevo cliente en el sistema
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cliente body dto.ClienteRequest true "Datos del cliente"
// @Success 201 {object} dto.ClienteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [post]
func (c *ClienteController) Create(ctx *gin.Context) {
	var req dto.ClienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cliente, err := clientedomain.NewCliente(req.Nombre, req.Apellido, req.Direccion, req.Telefono, req.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al crear el cliente", err.Error()))
		return
	}

	if err := c.clienteRepo.Create(ctx, cliente); err != nil {
		c.logger.Error("error al crear el cliente en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClienteResponse(cliente))
}

// Get retorna un cliente por su ID
// @Summary Buscar cliente
// @Description Retorna los datos de un cliente por su ID
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.ClienteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [get]
func (c *ClienteController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	cliente, err := c.clienteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClienteResponse(cliente))
}

// List retorna la colección completa de clientes
// @Summary Listar clientes
// @Description Retorna la colección completa de clientes
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ClienteListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [get]
func (c *ClienteController) List(ctx *gin.Context) {
	clientes, err := c.clienteRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClienteListResponse(clientes))
}

// Update actualiza los datos de un cliente
// @Summary Actualizar cliente
// @Description Actualiza los datos de un cliente existente
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Param cliente body dto.ClienteRequest true "Datos del cliente"
// @Success 200 {object} dto.ClienteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [put]
func (c *ClienteController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ClienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	cliente, err := c.clienteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el cliente", err.Error()))
		return
	}

	if err := cliente.Update(req.Nombre, req.Apellido, req.Direccion, req.Telefono, req.Email); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "error al actualizar los datos del cliente", err.Error()))
		return
	}

	if err := c.clienteRepo.Update(ctx, cliente); err != nil {
		c.logger.Error("error al actualizar el cliente en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClienteResponse(cliente))
}

// Delete elimina un cliente
// @Summary Eliminar cliente
// @Description Elimina un cliente del sistema
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [delete]
func (c *ClienteController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.clienteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al eliminar el cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente eliminado", nil))
}
