package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-test-api/internal/dto"
	"project-test-api/internal/response"
	"project-test-api/internal/service"
)

// EnderecoEntregaHandler handles delivery address HTTP requests
type EnderecoEntregaHandler struct {
	enderecoService service.EnderecoEntregaService
}

// NewEnderecoEntregaHandler creates a new EnderecoEntregaHandler
func NewEnderecoEntregaHandler(enderecoService service.EnderecoEntregaService) *EnderecoEntregaHandler {
	return &EnderecoEntregaHandler{enderecoService: enderecoService}
}

// GetEnderecos returns every non-deleted delivery address
func (h *EnderecoEntregaHandler) GetEnderecos(c *gin.Context) {
	enderecos, err := h.enderecoService.GetAll(c)
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar os endereços de entrega.")
		return
	}
	c.JSON(http.StatusOK, enderecos)
}

// GetEnderecoByID returns a single delivery address by id
func (h *EnderecoEntregaHandler) GetEnderecoByID(c *gin.Context) {
	endereco, err := h.enderecoService.GetByID(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar o endereço de entrega.")
		return
	}
	c.JSON(http.StatusOK, endereco)
}

// GetEnderecosByUsuario returns the delivery addresses of a usuario
func (h *EnderecoEntregaHandler) GetEnderecosByUsuario(c *gin.Context) {
	enderecos, err := h.enderecoService.GetByUsuarioID(c, c.Param("usuarioId"))
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar os endereços do usuário.")
		return
	}
	c.JSON(http.StatusOK, enderecos)
}

// CreateEndereco creates a new delivery address
func (h *EnderecoEntregaHandler) CreateEndereco(c *gin.Context) {
	var req dto.CreateEnderecoEntregaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados do endereço de entrega inválidos.")
		return
	}

	endereco, err := h.enderecoService.Create(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao criar o endereço de entrega.")
		return
	}
	c.JSON(http.StatusCreated, endereco)
}

// UpdateEndereco modifies an existing delivery address
func (h *EnderecoEntregaHandler) UpdateEndereco(c *gin.Context) {
	var req dto.UpdateEnderecoEntregaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados do endereço de entrega inválidos.")
		return
	}
	if c.Param("id") != req.ID.String() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "ID do corpo não corresponde ao ID da URL.")
		return
	}

	updated, err := h.enderecoService.Update(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao atualizar o endereço de entrega.")
		return
	}
	if !updated {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Endereço de entrega não encontrado!")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteEndereco soft-deletes a delivery address
func (h *EnderecoEntregaHandler) DeleteEndereco(c *gin.Context) {
	deleted, err := h.enderecoService.Delete(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao excluir o endereço de entrega.")
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Endereço de entrega não encontrado!")
		return
	}
	c.Status(http.StatusNoContent)
}
