package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-test-api/internal/dto"
	"project-test-api/internal/response"
	"project-test-api/internal/service"
)

// UsuarioHandler handles usuario HTTP requests
type UsuarioHandler struct {
	usuarioService service.UsuarioService
}

// NewUsuarioHandler creates a new UsuarioHandler
func NewUsuarioHandler(usuarioService service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

// GetUsuarios returns every non-deleted usuario
func (h *UsuarioHandler) GetUsuarios(c *gin.Context) {
	usuarios, err := h.usuarioService.GetAll(c)
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar os usuários.")
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// GetUsuarioByID returns a single usuario by id
func (h *UsuarioHandler) GetUsuarioByID(c *gin.Context) {
	usuario, err := h.usuarioService.GetByID(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar o usuário.")
		return
	}
	c.JSON(http.StatusOK, usuario)
}

// CreateUsuario creates a new usuario with its access record
func (h *UsuarioHandler) CreateUsuario(c *gin.Context) {
	var req dto.CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados do usuário inválidos.")
		return
	}

	usuario, err := h.usuarioService.Create(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao criar o usuário.")
		return
	}
	c.JSON(http.StatusCreated, usuario)
}

// UpdateUsuario modifies an existing usuario
func (h *UsuarioHandler) UpdateUsuario(c *gin.Context) {
	var req dto.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados do usuário inválidos.")
		return
	}
	if c.Param("id") != req.ID.String() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "ID do corpo não corresponde ao ID da URL.")
		return
	}

	updated, err := h.usuarioService.Update(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao atualizar o usuário.")
		return
	}
	if !updated {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Usuário não encontrado!")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUsuario soft-deletes a usuario and its access records
func (h *UsuarioHandler) DeleteUsuario(c *gin.Context) {
	deleted, err := h.usuarioService.Delete(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao excluir o usuário.")
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Usuário não encontrado!")
		return
	}
	c.Status(http.StatusNoContent)
}
