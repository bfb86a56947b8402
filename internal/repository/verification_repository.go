package repository

import (
	"errors"

	"github.com/books-app/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) CreateCode(code *models.VerificationCode) error {
	return r.db.Create(code).Error
}

func (r *VerificationRepository) GetCodeByID(id uuid.UUID) (*models.VerificationCode, error) {
	var code models.VerificationCode
	err := r.db.Where("id = ?", id).First(&code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &code, nil
}
