package dto

import (
	"time"

	"github.com/google/uuid"

	"project-test-api/internal/domain"
)

// CreateEnderecoEntregaRequest is the payload for creating a delivery address
type CreateEnderecoEntregaRequest struct {
	CEP         string    `json:"cep" binding:"required,max=10"`
	Rua         string    `json:"rua" binding:"required,max=200"`
	Numero      *string   `json:"numero,omitempty" binding:"omitempty,max=50"`
	Bairro      string    `json:"bairro" binding:"required,max=200"`
	Complemento string    `json:"complemento" binding:"max=200"`
	Cidade      string    `json:"cidade" binding:"required,max=200"`
	Estado      string    `json:"estado" binding:"required,max=200"`
	UsuarioID   uuid.UUID `json:"usuarioId"`
}

// ToEnderecoEntrega converts the request into a new domain entity
func (r *CreateEnderecoEntregaRequest) ToEnderecoEntrega() *domain.EnderecoEntrega {
	return &domain.EnderecoEntrega{
		CEP:         r.CEP,
		Rua:         r.Rua,
		Numero:      r.Numero,
		Bairro:      r.Bairro,
		Complemento: r.Complemento,
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		UsuarioID:   r.UsuarioID,
	}
}

// UpdateEnderecoEntregaRequest is the payload for modifying a delivery address
type UpdateEnderecoEntregaRequest struct {
	ID          uuid.UUID `json:"id"`
	CEP         *string   `json:"cep,omitempty" binding:"omitempty,max=10"`
	Rua         *string   `json:"rua,omitempty" binding:"omitempty,max=200"`
	Numero      *string   `json:"numero,omitempty" binding:"omitempty,max=50"`
	Bairro      *string   `json:"bairro,omitempty" binding:"omitempty,max=200"`
	Complemento *string   `json:"complemento,omitempty" binding:"omitempty,max=200"`
	Cidade      *string   `json:"cidade,omitempty" binding:"omitempty,max=200"`
	Estado      *string   `json:"estado,omitempty" binding:"omitempty,max=200"`
}

// ApplyTo copies the non-nil fields onto the entity
func (r *UpdateEnderecoEntregaRequest) ApplyTo(endereco *domain.EnderecoEntrega) {
	if r.CEP != nil {
		endereco.CEP = *r.CEP
	}
	if r.Rua != nil {
		endereco.Rua = *r.Rua
	}
	if r.Numero != nil {
		endereco.Numero = r.Numero
	}
	if r.Bairro != nil {
		endereco.Bairro = *r.Bairro
	}
	if r.Complemento != nil {
		endereco.Complemento = *r.Complemento
	}
	if r.Cidade != nil {
		endereco.Cidade = *r.Cidade
	}
	if r.Estado != nil {
		endereco.Estado = *r.Estado
	}
}

// EnderecoEntregaResponse is the external representation of a delivery address
type EnderecoEntregaResponse struct {
	ID          uuid.UUID  `json:"id"`
	CEP         string     `json:"cep"`
	Rua         string     `json:"rua"`
	Numero      *string    `json:"numero,omitempty"`
	Bairro      string     `json:"bairro"`
	Complemento string     `json:"complemento"`
	Cidade      string     `json:"cidade"`
	Estado      string     `json:"estado"`
	UsuarioID   uuid.UUID  `json:"usuarioId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdateAt    *time.Time `json:"updateAt,omitempty"`
}

// ToEnderecoEntregaResponse converts a domain entity into its response shape
func ToEnderecoEntregaResponse(e *domain.EnderecoEntrega) *EnderecoEntregaResponse {
	return &EnderecoEntregaResponse{
		ID:          e.ID,
		CEP:         e.CEP,
		Rua:         e.Rua,
		Numero:      e.Numero,
		Bairro:      e.Bairro,
		Complemento: e.Complemento,
		Cidade:      e.Cidade,
		Estado:      e.Estado,
		UsuarioID:   e.UsuarioID,
		CreatedAt:   e.CreatedAt,
		UpdateAt:    e.UpdateAt,
	}
}

// ToEnderecoEntregaResponses converts a list of entities
func ToEnderecoEntregaResponses(enderecos []domain.EnderecoEntrega) []*EnderecoEntregaResponse {
	out := make([]*EnderecoEntregaResponse, 0, len(enderecos))
	for i := range enderecos {
		out = append(out, ToEnderecoEntregaResponse(&enderecos[i]))
	}
	return out
}
