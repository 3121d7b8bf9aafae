package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-test-api/internal/domain"
)

// TarefaRepository handles tarefa data access
type TarefaRepository interface {
	GetAll(ctx context.Context) ([]domain.Tarefa, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Tarefa, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Tarefa, error)
	FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.Tarefa, error)
	AddAndSave(ctx context.Context, tarefa *domain.Tarefa) (*domain.Tarefa, error)
	Update(ctx context.Context, tarefa *domain.Tarefa) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error
}

type tarefaRepository struct {
	*Repository[domain.Tarefa]
	db *gorm.DB
}

// NewTarefaRepository creates a new TarefaRepository
func NewTarefaRepository(db *gorm.DB) TarefaRepository {
	return &tarefaRepository{Repository: NewRepository[domain.Tarefa](db), db: db}
}

// FindByUsuarioID returns the non-deleted tarefas of a usuario
func (r *tarefaRepository) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) ([]domain.Tarefa, error) {
	var tarefas []domain.Tarefa
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND is_deleted = ?", usuarioID, false).
		Order("data_criacao DESC").
		Find(&tarefas).Error
	return tarefas, err
}
