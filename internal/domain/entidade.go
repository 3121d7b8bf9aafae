package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entidade contains the identity and audit fields shared by every table.
// Column names follow the original schema, including the update_* spelling.
type Entidade struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedByUserID string     `gorm:"column:created_by_user_id;type:varchar(100);not null" json:"createdByUserId"`
	CreatedAt       time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"updateAt,omitempty"`
	UpdateByUserID  *string    `gorm:"column:update_by_user_id;type:varchar(100)" json:"updateByUserId,omitempty"`
	IsDeleted       bool       `gorm:"column:is_deleted;not null;default:false" json:"isDeleted"`
	DeletedAt       *time.Time `gorm:"column:deleted_at" json:"deletedAt,omitempty"`
	DeletedByUserID *string    `gorm:"column:deleted_by_user_id;type:varchar(100)" json:"deletedByUserId,omitempty"`
}

// BeforeCreate assigns the id and creation timestamp when not set by the caller.
func (e *Entidade) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return nil
}

// MarkUpdated stamps the modification audit fields.
func (e *Entidade) MarkUpdated(userID string) {
	now := time.Now().UTC()
	e.UpdateAt = &now
	e.UpdateByUserID = &userID
}
