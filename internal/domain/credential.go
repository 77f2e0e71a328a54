package domain

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the persisted authentication record for a User. Exactly
// one credential exists per user; the plaintext password is never stored,
// only its bcrypt hash.
type Credential struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsActive     bool      `json:"isActive" gorm:"not null;default:true"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	User         *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
