package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task priority values stored in the prioridade column
const (
	PrioridadeBaixa = "Baixa"
	PrioridadeMedia = "Media"
	PrioridadeAlta  = "Alta"
)

// Task status values stored in the status column
const (
	StatusPendente    = "Pendente"
	StatusEmAndamento = "EmAndamento"
	StatusConcluida   = "Concluida"
)

// Tarefa represents a task assigned to a user
type Tarefa struct {
	Entidade
	Titulo             string     `gorm:"column:titulo;type:varchar(100);not null" json:"titulo"`
	Descricao          *string    `gorm:"column:descricao;type:varchar(500)" json:"descricao,omitempty"`
	DataCriacao        time.Time  `gorm:"column:data_criacao;not null" json:"dataCriacao"`
	DataConclusao      *time.Time `gorm:"column:data_conclusao" json:"dataConclusao,omitempty"`
	DataLimite         *time.Time `gorm:"column:data_limite" json:"dataLimite,omitempty"`
	Prioridade         string     `gorm:"column:prioridade;type:varchar(50);not null" json:"prioridade"`
	Status             string     `gorm:"column:status;type:varchar(50);not null" json:"status"`
	UsuarioID          uuid.UUID  `gorm:"column:usuario_id;type:uuid;not null;index" json:"usuarioId"`
	TempoEstimadoHoras *int       `gorm:"column:tempo_estimado_horas" json:"tempoEstimadoHoras,omitempty"`
	Comentarios        *string    `gorm:"column:comentarios" json:"comentarios,omitempty"`
}

// TableName specifies the table name for Tarefa
func (Tarefa) TableName() string {
	return "tarefa"
}
