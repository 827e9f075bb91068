package events

import "time"

const SalaryPaidTopic = "hr.salary.paid.v1"

type SalaryPaidEvent struct {
	EventType       string     `json:"event_type"`
	SalaryID        string     `json:"salary_id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	EmployeeEmail   string     `json:"employee_email"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	NetSalary       float64    `json:"net_salary"`
	GrossSalary     float64    `json:"gross_salary"`
	TotalDeductions float64    `json:"total_deductions"`
	CreditDate      *time.Time `json:"credit_date,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}
