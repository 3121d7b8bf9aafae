package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-test-api/internal/domain"
)

// PedidoRepository handles pedido data access
type PedidoRepository interface {
	GetAll(ctx context.Context) ([]domain.Pedido, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pedido, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Pedido, error)
	FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.Pedido, error)
	AddAndSave(ctx context.Context, pedido *domain.Pedido) (*domain.Pedido, error)
	Update(ctx context.Context, pedido *domain.Pedido) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
}

type pedidoRepository struct {
	*Repository[domain.Pedido]
	db *gorm.DB
}

// NewPedidoRepository creates a new PedidoRepository
func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{Repository: NewRepository[domain.Pedido](db), db: db}
}

// FindByUsuarioID returns the non-deleted pedidos of a usuario
func (r *pedidoRepository) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.Pedido, error) {
	var pedidos []domain.Pedido
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND is_deleted = ?", usuarioID, false).
		Order("created_at DESC").
		Find(&pedidos).Error
	return pedidos, err
}
