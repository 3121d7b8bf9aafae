package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository implements the CRUD operations shared by every entity table.
// T must be a domain struct embedding domain.Entidade so the audit columns
// (is_deleted, deleted_at, deleted_by_user_id) exist on the table.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a generic repository bound to the given session.
// The session may be a shared connection or an open transaction.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// GetAll returns every entity that has not been soft-deleted. Ordering is
// left to the database.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// FindByID returns the entity with the given id, soft-deleted rows included.
// Callers decide whether a deleted row is acceptable.
func (r *Repository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindActiveByID returns the entity with the given id, excluding soft-deleted rows.
func (r *Repository[T]) FindActiveByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// AddAndSave inserts the entity and returns it with its generated id.
func (r *Repository[T]) AddAndSave(ctx context.Context, entity *T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Update saves all mutable fields of the entity. A missing row is an
// explicit not-found error, never a silent insert.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	result := r.db.WithContext(ctx).Model(entity).Select("*").Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks the row as deleted and stamps the deletion audit fields.
// The row stays in the table. A missing or already-deleted row is an
// explicit not-found error.
func (r *Repository[T]) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	result := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":         true,
			"deleted_at":         time.Now().UTC(),
			"deleted_by_user_id": deletedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
