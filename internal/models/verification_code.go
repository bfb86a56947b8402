package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode ties a mailed confirmation token to a freshly
// registered user. Codes carry no expiry and are checked, not consumed.
type VerificationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(32);not null" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
