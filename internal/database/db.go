package database

import (
	"github.com/books-app/backend/internal/config"
	"github.com/books-app/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection. The handle is returned rather
// than stored in a package global so tests can substitute their own.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
}

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Book{}, &models.VerificationCode{})
}
