package repository

import (
	"errors"

	"github.com/books-app/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) CreateBook(book *models.Book) error {
	return r.db.Create(book).Error
}

func (r *BookRepository) GetBookByID(id uuid.UUID) (*models.Book, error) {
	var book models.Book
	err := r.db.Where("id = ?", id).First(&book).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &book, nil
}

func (r *BookRepository) GetAllBooks() ([]models.Book, error) {
	var books []models.Book
	err := r.db.Order("created_at").Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepository) UpdateBook(book *models.Book) error {
	return r.db.Save(book).Error
}

// DeleteBook removes a book by id. Deleting an absent id is not an error.
func (r *BookRepository) DeleteBook(id uuid.UUID) error {
	return r.db.Delete(&models.Book{}, "id = ?", id).Error
}
