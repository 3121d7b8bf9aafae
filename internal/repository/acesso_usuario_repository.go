package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-test-api/internal/domain"
)

// AcessoUsuarioRepository handles acesso_usuario data access
type AcessoUsuarioRepository interface {
	GetAll(ctx context.Context) ([]domain.AcessoUsuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AcessoUsuario, error)
	FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.AcessoUsuario, error)
	AddAndSave(ctx context.Context, acesso *domain.AcessoUsuario) (*domain.AcessoUsuario, error)
	Update(ctx context.Context, acesso *domain.AcessoUsuario) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
}

type acessoUsuarioRepository struct {
	*Repository[domain.AcessoUsuario]
	db *gorm.DB
}

// NewAcessoUsuarioRepository creates a new AcessoUsuarioRepository
func NewAcessoUsuarioRepository(db *gorm.DB) AcessoUsuarioRepository {
	return &acessoUsuarioRepository{Repository: NewRepository[domain.AcessoUsuario](db), db: db}
}

// FindByUsuarioID returns the non-deleted access records of a usuario
func (r *acessoUsuarioRepository) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.AcessoUsuario, error) {
	var acessos []domain.AcessoUsuario
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND is_deleted = ?", usuarioID, false).
		Find(&acessos).Error
	return acessos, err
}
