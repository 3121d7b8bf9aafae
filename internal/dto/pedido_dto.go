package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"project-test-api/internal/domain"
)

// CreatePedidoRequest is the payload for creating a pedido
type CreatePedidoRequest struct {
	NumeroPedido  string          `json:"numeroPedido" binding:"required"`
	Descricao     string          `json:"descricao" binding:"required,max=200"`
	Valor         decimal.Decimal `json:"valor" binding:"required"`
	DataEntrega   *time.Time      `json:"dataEntrega,omitempty"`
	StatusEntrega string          `json:"statusEntrega" binding:"required,max=100"`
	UsuarioID     uuid.UUID       `json:"usuarioId"`
}

// ToPedido converts the request into a new domain entity
func (r *CreatePedidoRequest) ToPedido() *domain.Pedido {
	return &domain.Pedido{
		NumeroPedido:  r.NumeroPedido,
		Descricao:     r.Descricao,
		Valor:         r.Valor,
		DataEntrega:   r.DataEntrega,
		StatusEntrega: r.StatusEntrega,
		UsuarioID:     r.UsuarioID,
	}
}

// UpdatePedidoRequest is the payload for modifying a pedido
type UpdatePedidoRequest struct {
	ID            uuid.UUID        `json:"id"`
	NumeroPedido  *string          `json:"numeroPedido,omitempty"`
	Descricao     *string          `json:"descricao,omitempty" binding:"omitempty,max=200"`
	Valor         *decimal.Decimal `json:"valor,omitempty"`
	DataEntrega   *time.Time       `json:"dataEntrega,omitempty"`
	StatusEntrega *string          `json:"statusEntrega,omitempty" binding:"omitempty,max=100"`
}

// ApplyTo copies the non-nil fields onto the entity
func (r *UpdatePedidoRequest) ApplyTo(pedido *domain.Pedido) {
	if r.NumeroPedido != nil {
		pedido.NumeroPedido = *r.NumeroPedido
	}
	if r.Descricao != nil {
		pedido.Descricao = *r.Descricao
	}
	if r.Valor != nil {
		pedido.Valor = *r.Valor
	}
	if r.DataEntrega != nil {
		pedido.DataEntrega = r.DataEntrega
	}
	if r.StatusEntrega != nil {
		pedido.StatusEntrega = *r.StatusEntrega
	}
}

// PedidoResponse is the external representation of a pedido
type PedidoResponse struct {
	ID            uuid.UUID       `json:"id"`
	NumeroPedido  string          `json:"numeroPedido"`
	Descricao     string          `json:"descricao"`
	Valor         decimal.Decimal `json:"valor"`
	DataEntrega   *time.Time      `json:"dataEntrega,omitempty"`
	StatusEntrega string          `json:"statusEntrega"`
	UsuarioID     uuid.UUID       `json:"usuarioId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdateAt      *time.Time      `json:"updateAt,omitempty"`
}

// ToPedidoResponse converts a domain entity into its response shape
func ToPedidoResponse(p *domain.Pedido) *PedidoResponse {
	return &PedidoResponse{
		ID:            p.ID,
		NumeroPedido:  p.NumeroPedido,
		Descricao:     p.Descricao,
		Valor:         p.Valor,
		DataEntrega:   p.DataEntrega,
		StatusEntrega: p.StatusEntrega,
		UsuarioID:     p.UsuarioID,
		CreatedAt:     p.CreatedAt,
		UpdateAt:      p.UpdateAt,
	}
}

// ToPedidoResponses converts a list of entities
func ToPedidoResponses(pedidos []domain.Pedido) []*PedidoResponse {
	out := make([]*PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		out = append(out, ToPedidoResponse(&pedidos[i]))
	}
	return out
}
