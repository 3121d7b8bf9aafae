package dto

import (
	"time"

	"github.com/google/uuid"

	"project-test-api/internal/domain"
)

// CreateUsuarioRequest is the payload for creating a usuario
type CreateUsuarioRequest struct {
	Nome  string `json:"nome" binding:"required,max=200"`
	Email string `json:"email" binding:"required,email,max=200"`
	Senha string `json:"senha" binding:"required,min=6,max=200"`
}

// ToUsuario converts the request into a new domain entity
func (r *CreateUsuarioRequest) ToUsuario() *domain.Usuario {
	return &domain.Usuario{
		Nome:  r.Nome,
		Email: r.Email,
		Senha: r.Senha,
	}
}

// UpdateUsuarioRequest is the payload for modifying a usuario
type UpdateUsuarioRequest struct {
	ID    uuid.UUID `json:"id"`
	Nome  *string   `json:"nome,omitempty" binding:"omitempty,max=200"`
	Email *string   `json:"email,omitempty" binding:"omitempty,email,max=200"`
	Senha *string   `json:"senha,omitempty" binding:"omitempty,min=6,max=200"`
}

// ApplyTo copies the non-nil fields onto the entity
func (r *UpdateUsuarioRequest) ApplyTo(usuario *domain.Usuario) {
	if r.Nome != nil {
		usuario.Nome = *r.Nome
	}
	if r.Email != nil {
		usuario.Email = *r.Email
	}
	if r.Senha != nil {
		usuario.Senha = *r.Senha
	}
}

// UsuarioResponse is the external representation of a usuario. The senha
// column is never echoed back.
type UsuarioResponse struct {
	ID        uuid.UUID  `json:"id"`
	Nome      string     `json:"nome"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdateAt  *time.Time `json:"updateAt,omitempty"`
}

// ToUsuarioResponse converts a domain entity into its response shape
func ToUsuarioResponse(u *domain.Usuario) *UsuarioResponse {
	return &UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdateAt:  u.UpdateAt,
	}
}

// ToUsuarioResponses converts a list of entities
func ToUsuarioResponses(usuarios []domain.Usuario) []*UsuarioResponse {
	out := make([]*UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, ToUsuarioResponse(&usuarios[i]))
	}
	return out
}
