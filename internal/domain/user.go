package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff member of the administration backend. Authentication
// state lives on the linked Credential, not here.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	LastName  string    `json:"lastName" gorm:"not null"`
	Address   string    `json:"address"`
	DNI       string    `json:"dni" gorm:"column:dni"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	RoleID    uuid.UUID `json:"roleId" gorm:"type:uuid;not null"`
	Role      *Role     `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName is the name embedded in token claims.
func (u *User) DisplayName() string {
	return u.Name + " " + u.LastName
}
