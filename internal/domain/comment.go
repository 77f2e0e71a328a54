package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date      time.Time  `json:"date" gorm:"not null"`
	Message   string     `json:"message" gorm:"not null"`
	IsActive  bool       `json:"isActive" gorm:"not null;default:true"`
	ClientID  *uuid.UUID `json:"clientId,omitempty" gorm:"type:uuid"`
	Client    *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
