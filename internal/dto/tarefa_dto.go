package dto

import (
	"time"

	"github.com/google/uuid"

	"project-test-api/internal/domain"
)

// CreateTarefaRequest is the payload for creating a tarefa
type CreateTarefaRequest struct {
	Titulo             string     `json:"titulo" binding:"required,max=100"`
	Descricao          *string    `json:"descricao,omitempty" binding:"omitempty,max=500"`
	DataLimite         *time.Time `json:"dataLimite,omitempty"`
	Prioridade         string     `json:"prioridade,omitempty" binding:"omitempty,max=50"`
	Status             string     `json:"status,omitempty" binding:"omitempty,max=50"`
	UsuarioID          uuid.UUID  `json:"usuarioId"`
	TempoEstimadoHoras *int       `json:"tempoEstimadoHoras,omitempty"`
	Comentarios        *string    `json:"comentarios,omitempty"`
}

// ToTarefa converts the request into a new domain entity
func (r *CreateTarefaRequest) ToTarefa() *domain.Tarefa {
	prioridade := r.Prioridade
	if prioridade == "" {
		prioridade = domain.PrioridadeMedia
	}
	status := r.Status
	if status == "" {
		status = domain.StatusPendente
	}
	return &domain.Tarefa{
		Titulo:             r.Titulo,
		Descricao:          r.Descricao,
		DataCriacao:        time.Now().UTC(),
		DataLimite:         r.DataLimite,
		Prioridade:         prioridade,
		Status:             status,
		UsuarioID:          r.UsuarioID,
		TempoEstimadoHoras: r.TempoEstimadoHoras,
		Comentarios:        r.Comentarios,
	}
}

// UpdateTarefaRequest is the payload for modifying a tarefa. The id must
// match the id in the URL. Nil fields are left untouched.
type UpdateTarefaRequest struct {
	ID                 uuid.UUID  `json:"id"`
	Titulo             *string    `json:"titulo,omitempty" binding:"omitempty,max=100"`
	Descricao          *string    `json:"descricao,omitempty" binding:"omitempty,max=500"`
	DataConclusao      *time.Time `json:"dataConclusao,omitempty"`
	DataLimite         *time.Time `json:"dataLimite,omitempty"`
	Prioridade         *string    `json:"prioridade,omitempty" binding:"omitempty,max=50"`
	Status             *string    `json:"status,omitempty" binding:"omitempty,max=50"`
	TempoEstimadoHoras *int       `json:"tempoEstimadoHoras,omitempty"`
	Comentarios        *string    `json:"comentarios,omitempty"`
}

// ApplyTo copies the non-nil fields onto the entity
func (r *UpdateTarefaRequest) ApplyTo(tarefa *domain.Tarefa) {
	if r.Titulo != nil {
		tarefa.Titulo = *r.Titulo
	}
	if r.Descricao != nil {
		tarefa.Descricao = r.Descricao
	}
	if r.DataConclusao != nil {
		tarefa.DataConclusao = r.DataConclusao
	}
	if r.DataLimite != nil {
		tarefa.DataLimite = r.DataLimite
	}
	if r.Prioridade != nil {
		tarefa.Prioridade = *r.Prioridade
	}
	if r.Status != nil {
		tarefa.Status = *r.Status
	}
	if r.TempoEstimadoHoras != nil {
		tarefa.TempoEstimadoHoras = r.TempoEstimadoHoras
	}
	if r.Comentarios != nil {
		tarefa.Comentarios = r.Comentarios
	}
}

// TarefaResponse is the external representation of a tarefa
type TarefaResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Titulo             string     `json:"titulo"`
	Descricao          *string    `json:"descricao,omitempty"`
	DataCriacao        time.Time  `json:"dataCriacao"`
	DataConclusao      *time.Time `json:"dataConclusao,omitempty"`
	DataLimite         *time.Time `json:"dataLimite,omitempty"`
	Prioridade         string     `json:"prioridade"`
	Status             string     `json:"status"`
	UsuarioID          uuid.UUID  `json:"usuarioId"`
	TempoEstimadoHoras *int       `json:"tempoEstimadoHoras,omitempty"`
	Comentarios        *string    `json:"comentarios,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdateAt           *time.Time `json:"updateAt,omitempty"`
}

// ToTarefaResponse converts a domain entity into its response shape
func ToTarefaResponse(t *domain.Tarefa) *TarefaResponse {
	return &TarefaResponse{
		ID:                 t.ID,
		Titulo:             t.Titulo,
		Descricao:          t.Descricao,
		DataCriacao:        t.DataCriacao,
		DataConclusao:      t.DataConclusao,
		DataLimite:         t.DataLimite,
		Prioridade:         t.Prioridade,
		Status:             t.Status,
		UsuarioID:          t.UsuarioID,
		TempoEstimadoHoras: t.TempoEstimadoHoras,
		Comentarios:        t.Comentarios,
		CreatedAt:          t.CreatedAt,
		UpdateAt:           t.UpdateAt,
	}
}

// ToTarefaResponses converts a list of entities
func ToTarefaResponses(tarefas []domain.Tarefa) []*TarefaResponse {
	out := make([]*TarefaResponse, 0, len(tarefas))
	for i := range tarefas {
		out = append(out, ToTarefaResponse(&tarefas[i]))
	}
	return out
}
