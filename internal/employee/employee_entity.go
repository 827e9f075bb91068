package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"type:varchar(120);not null"`
	Email      string    `gorm:"type:varchar(120);uniqueIndex:uq_employee_email"`
	Department string    `gorm:"type:varchar(60);index"`
	Position   string    `gorm:"type:varchar(60)"`
	IsActive   bool      `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
