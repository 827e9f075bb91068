package salary

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalaryRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_salary_employee_period"`
	Month      int       `gorm:"not null;uniqueIndex:uq_salary_employee_period"`
	Year       int       `gorm:"not null;uniqueIndex:uq_salary_employee_period;index"`

	// Structure breakdown. Stored amounts are inputs; gross, deductions
	// and net are always re-derived before persisting, never trusted
	// from the caller.
	Basic              float64 `gorm:"type:numeric(12,2);not null;default:0"`
	HRA                float64 `gorm:"type:numeric(12,2);not null;default:0"`
	MedicalAllowance   float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TransportAllowance float64 `gorm:"type:numeric(12,2);not null;default:0"`
	SpecialAllowance   float64 `gorm:"type:numeric(12,2);not null;default:0"`
	Bonus              float64 `gorm:"type:numeric(12,2);not null;default:0"`
	ProvidentFund      float64 `gorm:"type:numeric(12,2);not null;default:0"`
	ProfessionalTax    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	IncomeTax          float64 `gorm:"type:numeric(12,2);not null;default:0"`
	OtherDeductions    float64 `gorm:"type:numeric(12,2);not null;default:0"`

	GrossSalary     float64 `gorm:"type:numeric(12,2);not null;default:0"`
	TotalDeductions float64 `gorm:"type:numeric(12,2);not null;default:0"`
	NetSalary       float64 `gorm:"type:numeric(12,2);not null;default:0"`

	WorkingDays int  `gorm:"not null;default:0"`
	PresentDays int  `gorm:"not null;default:0"`
	LeaveDays   int  `gorm:"not null;default:0"`
	AbsentDays  int  `gorm:"not null;default:0"`
	IsProrated  bool `gorm:"not null;default:false"`

	Status        string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentMethod *string    `gorm:"type:varchar(30)"`
	TransactionID *string    `gorm:"type:varchar(60)"`
	Remarks       *string    `gorm:"type:text"`
	CreditDate    *time.Time `gorm:"type:date"`
	ActualCreditDate *time.Time

	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
