package salary

import "time"

type StructureRequest struct {
	Basic              float64 `json:"basic" binding:"required,gt=0"`
	HRA                float64 `json:"hra" binding:"gte=0"`
	MedicalAllowance   float64 `json:"medical_allowance" binding:"gte=0"`
	TransportAllowance float64 `json:"transport_allowance" binding:"gte=0"`
	SpecialAllowance   float64 `json:"special_allowance" binding:"gte=0"`
	Bonus              float64 `json:"bonus" binding:"gte=0"`
	ProvidentFund      float64 `json:"provident_fund" binding:"gte=0"`
	ProfessionalTax    float64 `json:"professional_tax" binding:"gte=0"`
	IncomeTax          float64 `json:"income_tax" binding:"gte=0"`
	OtherDeductions    float64 `json:"other_deductions" binding:"gte=0"`
}

type CreateSalaryRequest struct {
	EmployeeID  string           `json:"employee_id" binding:"required,uuid"`
	Month       int              `json:"month" binding:"required,min=1,max=12"`
	Year        int              `json:"year" binding:"required,min=2000"`
	Structure   StructureRequest `json:"structure" binding:"required"`
	WorkingDays int              `json:"working_days" binding:"required,gt=0"`
	PresentDays int              `json:"present_days" binding:"gte=0"`
	LeaveDays   int              `json:"leave_days" binding:"gte=0"`
	AbsentDays  int              `json:"absent_days" binding:"gte=0"`
	IsProrated  bool             `json:"is_prorated"`
	CreditDate  *string          `json:"credit_date,omitempty"`
	Remarks     *string          `json:"remarks,omitempty"`
}

// UpdateStructureRequest carries only the fields the caller wants to
// override; nil fields keep the stored value (shallow merge).
type UpdateStructureRequest struct {
	Basic              *float64 `json:"basic,omitempty" binding:"omitempty,gt=0"`
	HRA                *float64 `json:"hra,omitempty" binding:"omitempty,gte=0"`
	MedicalAllowance   *float64 `json:"medical_allowance,omitempty" binding:"omitempty,gte=0"`
	TransportAllowance *float64 `json:"transport_allowance,omitempty" binding:"omitempty,gte=0"`
	SpecialAllowance   *float64 `json:"special_allowance,omitempty" binding:"omitempty,gte=0"`
	Bonus              *float64 `json:"bonus,omitempty" binding:"omitempty,gte=0"`
	ProvidentFund      *float64 `json:"provident_fund,omitempty" binding:"omitempty,gte=0"`
	ProfessionalTax    *float64 `json:"professional_tax,omitempty" binding:"omitempty,gte=0"`
	IncomeTax          *float64 `json:"income_tax,omitempty" binding:"omitempty,gte=0"`
	OtherDeductions    *float64 `json:"other_deductions,omitempty" binding:"omitempty,gte=0"`
}

type UpdateSalaryRequest struct {
	Structure   *UpdateStructureRequest `json:"structure,omitempty"`
	WorkingDays *int                    `json:"working_days,omitempty" binding:"omitempty,gt=0"`
	PresentDays *int                    `json:"present_days,omitempty" binding:"omitempty,gte=0"`
	LeaveDays   *int                    `json:"leave_days,omitempty" binding:"omitempty,gte=0"`
	AbsentDays  *int                    `json:"absent_days,omitempty" binding:"omitempty,gte=0"`
	IsProrated  *bool                   `json:"is_prorated,omitempty"`
	CreditDate  *string                 `json:"credit_date,omitempty"`
	Remarks     *string                 `json:"remarks,omitempty"`
}

type UpdateStatusRequest struct {
	Status  string  `json:"status" binding:"required,oneof=PENDING PROCESSED PAID ON_HOLD"`
	Remarks *string `json:"remarks,omitempty"`
}

type ProcessPaymentRequest struct {
	PaymentMethod    string  `json:"payment_method" binding:"required,oneof=BANK_TRANSFER CHEQUE CASH UPI"`
	TransactionID    *string `json:"transaction_id,omitempty"`
	ActualCreditDate *string `json:"actual_credit_date,omitempty"`
	Remarks          *string `json:"remarks,omitempty"`
}

type BulkGenerateRequest struct {
	Month            int              `json:"month" binding:"required,min=1,max=12"`
	Year             int              `json:"year" binding:"required,min=2000"`
	Department       string           `json:"department,omitempty"`
	DefaultStructure StructureRequest `json:"default_structure" binding:"required"`
	WorkingDays      int              `json:"working_days" binding:"required,gt=0"`
}

type SalaryQuery struct {
	EmployeeID string
	Month      int
	Year       int
	Status     string
	Department string
	Page       int
	Limit      int
}

type StructureResponse struct {
	Basic              float64 `json:"basic"`
	HRA                float64 `json:"hra"`
	MedicalAllowance   float64 `json:"medical_allowance"`
	TransportAllowance float64 `json:"transport_allowance"`
	SpecialAllowance   float64 `json:"special_allowance"`
	Bonus              float64 `json:"bonus"`
	ProvidentFund      float64 `json:"provident_fund"`
	ProfessionalTax    float64 `json:"professional_tax"`
	IncomeTax          float64 `json:"income_tax"`
	OtherDeductions    float64 `json:"other_deductions"`
}

type SalaryResponse struct {
	ID               string            `json:"id"`
	EmployeeID       string            `json:"employee_id"`
	Month            int               `json:"month"`
	Year             int               `json:"year"`
	Structure        StructureResponse `json:"structure"`
	GrossSalary      float64           `json:"gross_salary"`
	TotalDeductions  float64           `json:"total_deductions"`
	NetSalary        float64           `json:"net_salary"`
	WorkingDays      int               `json:"working_days"`
	PresentDays      int               `json:"present_days"`
	LeaveDays        int               `json:"leave_days"`
	AbsentDays       int               `json:"absent_days"`
	IsProrated       bool              `json:"is_prorated"`
	Status           string            `json:"status"`
	PaymentMethod    *string           `json:"payment_method,omitempty"`
	TransactionID    *string           `json:"transaction_id,omitempty"`
	Remarks          *string           `json:"remarks,omitempty"`
	CreditDate       *time.Time        `json:"credit_date,omitempty"`
	ActualCreditDate *time.Time        `json:"actual_credit_date,omitempty"`
	ProcessedBy      *string           `json:"processed_by,omitempty"`
	ProcessedAt      *time.Time        `json:"processed_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type BulkFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type BulkGenerateResponse struct {
	Month   int              `json:"month"`
	Year    int              `json:"year"`
	Success []SalaryResponse `json:"success"`
	Failed  []BulkFailure    `json:"failed"`
}

type StatusStatistic struct {
	Status   string  `json:"status"`
	Count    int64   `json:"count"`
	TotalNet float64 `json:"total_net"`
	AvgNet   float64 `json:"avg_net"`
}

type MonthStatistic struct {
	Month    int     `json:"month"`
	Count    int64   `json:"count"`
	TotalNet float64 `json:"total_net"`
}

type StatisticsResponse struct {
	Year       int               `json:"year"`
	Department string            `json:"department,omitempty"`
	ByStatus   []StatusStatistic `json:"by_status"`
	ByMonth    []MonthStatistic  `json:"by_month"`
}
