package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditEventType categorizes an audit entry
type AuditEventType string

const (
	AuditEventCreate AuditEventType = "CREATE"
	AuditEventUpdate AuditEventType = "UPDATE"
	AuditEventDelete AuditEventType = "DELETE"
)

// AuditEntry records a mutation to an audited entity. Changes holds the
// field-level diff as JSON.
type AuditEntry struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventType  AuditEventType `json:"eventType" gorm:"not null"`
	Collection string         `json:"collection" gorm:"not null"`
	DocumentID uuid.UUID      `json:"documentId" gorm:"type:uuid;not null"`
	UserID     *uuid.UUID     `json:"userId,omitempty" gorm:"type:uuid"`
	Changes    datatypes.JSON `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}
