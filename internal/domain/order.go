package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentState tracks whether an order has been settled
type PaymentState string

const (
	PaymentStatePaid    PaymentState = "paid"
	PaymentStatePending PaymentState = "pending"
)

// IsValid checks if a payment state is valid
func (p PaymentState) IsValid() bool {
	switch p {
	case PaymentStatePaid, PaymentStatePending:
		return true
	}
	return false
}

// String returns the string representation of the payment state
func (p PaymentState) String() string {
	return string(p)
}

type Order struct {
	ID                 uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DateOrder          time.Time    `json:"dateOrder" gorm:"not null"`
	NumberOrder        int          `json:"numberOrder" gorm:"uniqueIndex;not null"`
	ConsumptionAccount float64      `json:"consumptionAccount" gorm:"not null"`
	Balance            float64      `json:"balance" gorm:"not null"`
	Total              float64      `json:"total" gorm:"not null"`
	PaymentState       PaymentState `json:"paymentState" gorm:"not null;default:'pending'"`
	IsActive           bool         `json:"isActive" gorm:"not null;default:true"`
	ClientID           uuid.UUID    `json:"clientId" gorm:"type:uuid;not null"`
	Client             *Client      `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}
