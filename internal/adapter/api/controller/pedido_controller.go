package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khalessi/gestor/internal/adapter/api/dto"
	"github.com/khalessi/gestor/internal/adapter/repository"
	clientedomain "github.com/khalessi/gestor/internal/domain/cliente"
	pedidodomain "github.com/khalessi/gestor/internal/domain/pedido"
	productodomain "github.com/khalessi/gestor/internal/domain/producto"
	"github.com/khalessi/gestor/pkg/logger"
)

// PedidoController gestiona las peticiones relacionadas con pedidos
type PedidoController struct {
	pedidoRepo   pedidodomain.Repository
	clienteRepo  clientedomain.Repository
	productoRepo productodomain.Repository
	logger       logger.Logger
}

// NewPedidoController crea una nueva instancia de PedidoController
func NewPedidoController(
	pedidoRepo pedidodomain.Repository,
	clienteRepo clientedomain.Repository,
	productoRepo productodomain.Repository,
	logger logger.Logger,
) *PedidoController {
	return &PedidoController{
		pedidoRepo:   pedidoRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		logger:       logger,
	}
}

// Create arma el borrador del pedido y lo finaliza. Las precondiciones
// (cliente seleccionado, al menos un producto) se verifican antes de
// escribir nada: una petición inválida no produce ninguna llamada de
// escritura. La cabecera y los ítems se persisten juntos.
// @Summary Crear pedido
// @Description Crea un pedido para un cliente con sus líneas de productos. Nace Pendiente y Debe.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param pedido body dto.PedidoRequest true "Cliente y líneas del pedido"
// @Success 201 {object} dto.PedidoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pedidos [post]
func (c *PedidoController) Create(ctx *gin.Context) {
	var req dto.PedidoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "debe seleccionar un cliente y al menos un producto", err.Error()))
		return
	}

	cliente, err := c.clienteRepo.FindByID(ctx, req.IDCliente)
	if err != nil {
		if errors.Is(err, repository.ErrClienteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el cliente del pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el cliente", err.Error()))
		return
	}

	borrador := pedidodomain.NewBorrador()
	borrador.SeleccionarCliente(cliente)

	for _, item := range req.Items {
		producto, err := c.productoRepo.FindByID(ctx, item.IDProducto)
		if err != nil {
			if errors.Is(err, repository.ErrProductoNotFound) {
				ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "producto no encontrado", item.IDProducto))
				return
			}
			c.logger.Error("error al buscar un producto del pedido", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el producto", err.Error()))
			return
		}

		if err := borrador.AgregarProducto(*producto, item.Cantidad); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "línea de pedido inválida", err.Error()))
			return
		}
	}

	pedido, err := borrador.Finalizar()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "no se pudo finalizar el pedido", err.Error()))
		return
	}

	if err := c.pedidoRepo.Create(ctx, pedido); err != nil {
		c.logger.Error("error al crear el pedido en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el pedido", err.Error()))
		return
	}

	borrador.Reiniciar()

	ctx.JSON(http.StatusCreated, dto.ToPedidoResponse(pedido))
}

// Get retorna un pedido por su ID, con sus ítems
// @Summary Buscar pedido
// @Description Retorna los datos de un pedido y sus líneas por su ID
// @Tags pedidos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pedido"
// @Success 200 {object} dto.PedidoResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pedidos/{id} [get]
func (c *PedidoController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	pedido, err := c.pedidoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPedidoResponse(pedido))
}

// List retorna la colección completa de pedidos
// @Summary Listar pedidos
// @Description Retorna la colección completa de pedidos con sus líneas
// @Tags pedidos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.PedidoListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pedidos [get]
func (c *PedidoController) List(ctx *gin.Context) {
	pedidos, err := c.pedidoRepo.List(ctx)
	if err != nil {
		c.logger.Error("error al listar pedidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al listar pedidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPedidoListResponse(pedidos))
}

// Update reescribe la cabecera del pedido con nuevos estados de entrega y
// pago. Ambos ejes cambian libremente y en cualquier combinación.
// @Summary Actualizar pedido
// @Description Reescribe el registro del pedido con los estados indicados
// @Tags pedidos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pedido"
// @Param pedido body dto.PedidoUpdateRequest true "Estados del pedido"
// @Success 200 {object} dto.PedidoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pedidos/{id} [put]
func (c *PedidoController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.PedidoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	pedido, err := c.pedidoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al buscar el pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el pedido", err.Error()))
		return
	}

	if err := pedido.CambiarEstado(req.Estado); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estado inválido", err.Error()))
		return
	}

	if err := pedido.CambiarPago(req.Pago); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "pago inválido", err.Error()))
		return
	}

	if err := c.pedidoRepo.Update(ctx, pedido); err != nil {
		c.logger.Error("error al actualizar el pedido en la base de datos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al guardar el pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPedidoResponse(pedido))
}

// UpdateEstado actualiza solo el estado de entrega del pedido
// @Summary Cambiar estado de entrega
// @Description Actualiza el estado de entrega del pedido. Entregado puede volver a Pendiente.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pedido"
// @Param estado body dto.EstadoRequest true "Nuevo estado"
// @Success 200 {object} dto.PedidoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pedidos/{id}/estado [patch]
func (c *PedidoController) UpdateEstado(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.EstadoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if !pedidodomain.EstadoValido(req.Estado) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estado inválido", string(req.Estado)))
		return
	}

	if err := c.pedidoRepo.UpdateEstado(ctx, id, req.Estado); err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al actualizar el estado del pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar el estado", err.Error()))
		return
	}

	c.respondWithPedido(ctx, id)
}

// UpdatePago actualiza solo el estado de pago del pedido
// @Summary Cambiar estado de pago
// @Description Actualiza el estado de pago del pedido. Debe y Pagado se alternan libremente.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pedido"
// @Param pago body dto.PagoRequest true "Nuevo estado de pago"
// @Success 200 {object} dto.PedidoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pedidos/{id}/pago [patch]
func (c *PedidoController) UpdatePago(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.PagoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "datos inválidos", err.Error()))
		return
	}

	if !pedidodomain.PagoValido(req.Pago) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "pago inválido", string(req.Pago)))
		return
	}

	if err := c.pedidoRepo.UpdatePago(ctx, id, req.Pago); err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al actualizar el pago del pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al actualizar el pago", err.Error()))
		return
	}

	c.respondWithPedido(ctx, id)
}

// Delete elimina un pedido y sus ítems
// @Summary Eliminar pedido
// @Description Elimina un pedido y sus líneas del sistema
// @Tags pedidos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del pedido"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pedidos/{id} [delete]
func (c *PedidoController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.pedidoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPedidoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "pedido no encontrado", err.Error()))
			return
		}
		c.logger.Error("error al eliminar el pedido", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al eliminar el pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("pedido eliminado", nil))
}

// respondWithPedido relee el pedido persistido y responde con él. La
// respuesta siempre refleja la fila autoritativa, no un parche local.
func (c *PedidoController) respondWithPedido(ctx *gin.Context, id string) {
	pedido, err := c.pedidoRepo.FindByID(ctx, id)
	if err != nil {
		c.logger.Error("error al releer el pedido actualizado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al buscar el pedido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPedidoResponse(pedido))
}
