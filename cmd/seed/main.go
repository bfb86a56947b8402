package main

import (
	"log"
	"os"

	"github.com/books-app/backend/internal/config"
	"github.com/books-app/backend/internal/database"
	"github.com/books-app/backend/internal/models"
	"github.com/books-app/backend/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	seedAdmin(db)
	seedBooks(db)
}

func seedAdmin(db *gorm.DB) {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Username)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		ID:           uuid.New(),
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Verified:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created:", admin.Username)
}

func seedBooks(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count books:", err)
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	books := []models.Book{
		{ID: uuid.New(), Title: "Dune", Author: "Frank Herbert", PublicationDate: "1965-08-01", Genres: []string{"scifi"}},
		{ID: uuid.New(), Title: "The Hobbit", Author: "J. R. R. Tolkien", PublicationDate: "1937-09-21", Genres: []string{"fantasy"}},
		{ID: uuid.New(), Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", PublicationDate: "1866-01-01", Genres: []string{"classic", "psychological"}},
	}

	if err := db.Create(&books).Error; err != nil {
		log.Fatal("Failed to seed books:", err)
	}

	log.Printf("Seeded %d books", len(books))
}
