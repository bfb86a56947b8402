package models

import (
	"time"

	"github.com/google/uuid"
)

// Role levels are ordinal: anything >= RoleAdmin passes the admin gate.
const (
	RoleUser  = 0
	RoleAdmin = 2
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	Role         int       `gorm:"not null;default:0" json:"role"`
	Verified     bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user clears the administrator threshold.
func (u *User) IsAdmin() bool {
	return u.Role >= RoleAdmin
}

// Profile is the cacheable projection of a User with the password excluded.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     int       `json:"role"`
	Verified bool      `json:"verified"`
}

// Profile projects the user into its public form.
func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Verified: u.Verified,
	}
}
