package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer of the business. Orders and comments hang off
// clients; clients never log in.
type Client struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Address   string    `json:"address"`
	DNI       string    `json:"dni" gorm:"column:dni"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
