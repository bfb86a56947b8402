package models

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Author          string    `gorm:"type:varchar(255);not null" json:"author"`
	PublicationDate string    `gorm:"type:varchar(50)" json:"publicationDate"`
	Genres          []string  `gorm:"serializer:json" json:"genres"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
