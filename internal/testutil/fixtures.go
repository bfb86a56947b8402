package testutil

import (
	"github.com/books-app/backend/internal/models"
	"github.com/books-app/backend/internal/utils"
	"github.com/google/uuid"
)

// CreateTestUser creates a user fixture with a hashed password.
func CreateTestUser(username, email, password string, role int) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}, nil
}

// DefaultTestUser returns a default regular user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

// CreateTestBook creates a catalog fixture.
func CreateTestBook(title, author, publicationDate string, genres []string) *models.Book {
	return &models.Book{
		ID:              uuid.New(),
		Title:           title,
		Author:          author,
		PublicationDate: publicationDate,
		Genres:          genres,
	}
}
