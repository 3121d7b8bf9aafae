package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"project-test-api/internal/dto"
	"project-test-api/internal/response"
	"project-test-api/internal/service"
)

// TarefaHandler handles tarefa HTTP requests
type TarefaHandler struct {
	tarefaService service.TarefaService
}

// NewTarefaHandler creates a new TarefaHandler
func NewTarefaHandler(tarefaService service.TarefaService) *TarefaHandler {
	return &TarefaHandler{tarefaService: tarefaService}
}

// GetTarefas returns every non-deleted tarefa
func (h *TarefaHandler) GetTarefas(c *gin.Context) {
	tarefas, err := h.tarefaService.GetAll(c)
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar as tarefas.")
		return
	}
	c.JSON(http.StatusOK, tarefas)
}

// GetTarefaByID returns a single tarefa by id
func (h *TarefaHandler) GetTarefaByID(c *gin.Context) {
	tarefa, err := h.tarefaService.GetByID(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar a tarefa.")
		return
	}
	c.JSON(http.StatusOK, tarefa)
}

// GetTarefasByUsuario returns the tarefas of a usuario
func (h *TarefaHandler) GetTarefasByUsuario(c *gin.Context) {
	tarefas, err := h.tarefaService.GetByUsuarioID(c, c.Param("usuarioId"))
	if err != nil {
		handleServiceError(c, err, "Erro ao buscar as tarefas do usuário.")
		return
	}
	c.JSON(http.StatusOK, tarefas)
}

// CreateTarefa creates a new tarefa
func (h *TarefaHandler) CreateTarefa(c *gin.Context) {
	var req dto.CreateTarefaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados da tarefa inválidos.")
		return
	}

	tarefa, err := h.tarefaService.Create(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao criar a tarefa.")
		return
	}
	c.JSON(http.StatusCreated, tarefa)
}

// UpdateTarefa modifies an existing tarefa. The body id must match the URL id.
func (h *TarefaHandler) UpdateTarefa(c *gin.Context) {
	var req dto.UpdateTarefaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Dados da tarefa inválidos.")
		return
	}
	if c.Param("id") != req.ID.String() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "ID do corpo não corresponde ao ID da URL.")
		return
	}

	updated, err := h.tarefaService.Update(c, &req)
	if err != nil {
		handleServiceError(c, err, "Erro ao atualizar a tarefa.")
		return
	}
	if !updated {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Tarefa não encontrada!")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteTarefa soft-deletes a tarefa
func (h *TarefaHandler) DeleteTarefa(c *gin.Context) {
	deleted, err := h.tarefaService.Delete(c, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Erro ao excluir a tarefa.")
		return
	}
	if !deleted {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Tarefa não encontrada!")
		return
	}
	c.Status(http.StatusNoContent)
}
