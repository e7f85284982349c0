package database

import (
	"shopcart_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Order matters: users before the
// tables that reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.EmailVerificationToken{},
		&models.Item{},
		&models.CartItem{},
	)
}
