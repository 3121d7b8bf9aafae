package service

import (
	"context"

	"github.com/google/uuid"

	"project-test-api/internal/response"
)

// Fixed service-layer errors. The messages are part of the API contract and
// surface to clients unchanged.
var (
	ErrIDInvalido            = response.NewAppError(response.ErrCodeValidation, "ID é inválido", "")
	ErrNaoAutenticado        = response.NewAppError(response.ErrCodeUnauthorized, "Usuário não autenticado", "")
	ErrTarefaNaoEncontrada   = response.NewAppError(response.ErrCodeNotFound, "Tarefa não encontrada!", "")
	ErrPedidoNaoEncontrado   = response.NewAppError(response.ErrCodeNotFound, "Pedido não encontrado!", "")
	ErrEnderecoNaoEncontrado = response.NewAppError(response.ErrCodeNotFound, "Endereço de entrega não encontrado!", "")
	ErrUsuarioNaoEncontrado  = response.NewAppError(response.ErrCodeNotFound, "Usuário não encontrado!", "")
	ErrEmailJaCadastrado     = response.NewAppError(response.ErrCodeValidation, "E-mail já cadastrado", "")
)

// currentUserID reads the authenticated user id placed in the context by the
// auth middleware. Mutating operations use it to stamp the audit fields.
func currentUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value("user_id").(uuid.UUID)
	if !ok {
		return "", ErrNaoAutenticado
	}
	return userID.String(), nil
}

// parseID validates that the identifier is a well-formed, non-empty uuid
// before any storage access happens.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed == uuid.Nil {
		return uuid.Nil, ErrIDInvalido
	}
	return parsed, nil
}
