package leave

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`

	LeaveType string    `gorm:"type:varchar(20);not null"`
	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays float64   `gorm:"type:numeric(4,1);not null;default:1"`
	Reason    string    `gorm:"type:text"`

	IsHalfDay     bool    `gorm:"not null;default:false"`
	HalfDayPeriod *string `gorm:"type:varchar(15)"`

	Status        string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ReviewedBy    *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt    *time.Time
	ReviewRemarks *string  `gorm:"type:text"`
	Attachments   []string `gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// LeaveBalance is the yearly ledger all transitions for one employee
// serialize through. Remaining is always derived as total - used.
type LeaveBalance struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_year"`
	Year       int       `gorm:"not null;uniqueIndex:uq_leave_balance_employee_year"`

	CasualTotal float64 `gorm:"type:numeric(5,1);not null;default:12"`
	CasualUsed  float64 `gorm:"type:numeric(5,1);not null;default:0"`
	SickTotal   float64 `gorm:"type:numeric(5,1);not null;default:10"`
	SickUsed    float64 `gorm:"type:numeric(5,1);not null;default:0"`
	PaidTotal   float64 `gorm:"type:numeric(5,1);not null;default:15"`
	PaidUsed    float64 `gorm:"type:numeric(5,1);not null;default:0"`
	UnpaidUsed  float64 `gorm:"type:numeric(5,1);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
