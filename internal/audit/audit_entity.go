package audit

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  *uuid.UUID `gorm:"type:uuid;index"`
	PerformedBy uuid.UUID  `gorm:"type:uuid;not null;index"`

	Action     string `gorm:"type:varchar(40);not null;index:idx_audit_action_module"`
	Module     string `gorm:"type:varchar(30);not null;index:idx_audit_action_module"`
	EntityType string `gorm:"type:varchar(30);not null"`
	EntityID   string `gorm:"type:varchar(60);not null;index"`
	Status     string `gorm:"type:varchar(20);not null;default:'SUCCESS'"`

	PreviousData map[string]any `gorm:"serializer:json;type:jsonb"`
	NewData      map[string]any `gorm:"serializer:json;type:jsonb"`
	Metadata     map[string]any `gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time
}
