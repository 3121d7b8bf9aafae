package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-test-api/internal/domain"
)

// UsuarioRepository handles usuario data access
type UsuarioRepository interface {
	GetAll(ctx context.Context) ([]domain.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Usuario, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	AddAndSave(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	Update(ctx context.Context, usuario *domain.Usuario) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
}

type usuarioRepository struct {
	*Repository[domain.Usuario]
	db *gorm.DB
}

// NewUsuarioRepository creates a new UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{Repository: NewRepository[domain.Usuario](db), db: db}
}

// FindByEmail finds a non-deleted usuario by email
func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	var usuario domain.Usuario
	err := r.db.WithContext(ctx).Where("email = ? AND is_deleted = ?", email, false).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
