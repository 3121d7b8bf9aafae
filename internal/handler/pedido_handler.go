package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-test-api/internal/dto"
	"project-test-api/internal/response"
	"project-test-api/internal/service"
)

// PedidoHandler handles pedido HTTP requests
type PedidoHandler struct {
	pedidoService service.PedidoService
}

// NewPedidoHandler creates a new PedidoHandler
func NewPedidoHandler(pedidoService service.PedidoService) *PedidoHandler {
	return &PedidoHandler{pedidoService: pedidoService}
}

// GetPedidos returns every non-deleted pedido
func (h *PedidoHandler) GetPedidos(c *gin.Context) {
	pedidos, err := h.pedidoService.GetAll(c)
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar os pedidos.")
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// GetPedidoByID returns a single pedido by id
func (h *PedidoHandler) GetPedidoByID(c *gin.Context) {
	pedido, err := h.pedidoService.GetByID(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar o pedido.")
		return
	}
	c.JSON(http.StatusOK, pedido)
}

// GetPedidosByUsuario returns the pedidos of a usuario
func (h *PedidoHandler) GetPedidosByUsuario(c *gin.Context) {
	pedidos, err := h.pedidoService.GetByUsuarioID(c, c.Param("usuarioId"))
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar os pedidos do usuário.")
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// CreatePedido creates a new pedido
func (h *PedidoHandler) CreatePedido(c *gin.Context) {
	var req dto.CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados do pedido inválidos.")
		return
	}

	pedido, err := h.pedidoService.Create(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao criar o pedido.")
		return
	}
	c.JSON(http.StatusCreated, pedido)
}

// UpdatePedido modifies an existing pedido. The body id must match the URL id.
func (h *PedidoHandler) UpdatePedido(c *gin.Context) {
	var req dto.UpdatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados do pedido inválidos.")
		return
	}
	if c.Param("id") != req.ID.String() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "ID do corpo não corresponde ao ID da URL.")
		return
	}

	updated, err := h.pedidoService.Update(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao atualizar o pedido.")
		return
	}
	if !updated {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Pedido não encontrado!")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePedido soft-deletes a pedido
func (h *PedidoHandler) DeletePedido(c *gin.Context) {
	deleted, err := h.pedidoService.Delete(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao excluir o pedido.")
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Pedido não encontrado!")
		return
	}
	c.Status(http.StatusNoContent)
}
