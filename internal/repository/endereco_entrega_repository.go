package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-test-api/internal/domain"
)

// EnderecoEntregaRepository handles endereco_entrega data access
type EnderecoEntregaRepository interface {
	GetAll(ctx context.Context) ([]domain.EnderecoEntrega, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.EnderecoEntrega, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.EnderecoEntrega, error)
	FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.EnderecoEntrega, error)
	AddAndSave(ctx context.Context, endereco *domain.EnderecoEntrega) (*domain.EnderecoEntrega, error)
	Update(ctx context.Context, endereco *domain.EnderecoEntrega) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
}

type enderecoEntregaRepository struct {
	*Repository[domain.EnderecoEntrega]
	db *gorm.DB
}

// NewEnderecoEntregaRepository creates a new EnderecoEntregaRepository
func NewEnderecoEntregaRepository(db *gorm.DB) EnderecoEntregaRepository {
	return &enderecoEntregaRepository{Repository: NewRepository[domain.EnderecoEntrega](db), db: db}
}

// FindByUsuarioID returns the non-deleted delivery addresses of a usuario
func (r *enderecoEntregaRepository) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.EnderecoEntrega, error) {
	var enderecos []domain.EnderecoEntrega
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND is_deleted = ?", usuarioID, false).
		Find(&enderecos).Error
	return enderecos, err
}
