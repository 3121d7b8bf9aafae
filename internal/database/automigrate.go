package database

import (
	"fmt"

	"gorm.io/gorm"

	"project-test-api/internal/domain"
)

// AutoMigrate creates or updates the tables for every domain model. Usuario
// goes first so the cascade foreign keys have their target.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Usuario{},
		&domain.AcessoUsuario{},
		&domain.Pedido{},
		&domain.EnderecoEntrega{},
		&domain.Tarefa{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
