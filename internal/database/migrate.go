package database

import (
	"fmt"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// RegisteredModels lists every model in AutoMigrate order. Users must come
// first so the association tables can reference them.
func RegisteredModels() []any {
	return []any{
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
	}
}

// Migrate applies the schema for all registered models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(RegisteredModels()...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}
