package leave

type ApplyLeaveRequest struct {
	LeaveType     string   `json:"leave_type" binding:"required,oneof=CASUAL SICK PAID UNPAID MATERNITY PATERNITY"`
	StartDate     string   `json:"start_date" binding:"required"`
	EndDate       string   `json:"end_date" binding:"required"`
	Reason        string   `json:"reason"`
	IsHalfDay     bool     `json:"is_half_day"`
	HalfDayPeriod *string  `json:"half_day_period" binding:"omitempty,oneof=FIRST_HALF SECOND_HALF"`
	Attachments   []string `json:"attachments"`
}

type ReviewLeaveRequest struct {
	Remarks string `json:"remarks"`
}

// LeaveQuery is the typed filter for list endpoints. Zero values mean
// "no filter"; skip is derived as (page-1)*limit.
type LeaveQuery struct {
	Status     string
	LeaveType  string
	EmployeeID string
	Department string
	From       string
	To         string
	Page       int
	Limit      int
}

type LeaveResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	LeaveType     string   `json:"leave_type"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	TotalDays     float64  `json:"total_days"`
	Reason        string   `json:"reason"`
	IsHalfDay     bool     `json:"is_half_day"`
	HalfDayPeriod *string  `json:"half_day_period,omitempty"`
	Status        string   `json:"status"`
	ReviewedBy    *string  `json:"reviewed_by,omitempty"`
	ReviewedAt    *string  `json:"reviewed_at,omitempty"`
	ReviewRemarks *string  `json:"review_remarks,omitempty"`
	Attachments   []string `json:"attachments,omitempty"`
}

type TypeBalance struct {
	Total     float64 `json:"total"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}

type BalanceResponse struct {
	EmployeeID string      `json:"employee_id"`
	Year       int         `json:"year"`
	Casual     TypeBalance `json:"casual"`
	Sick       TypeBalance `json:"sick"`
	Paid       TypeBalance `json:"paid"`
	UnpaidUsed float64     `json:"unpaid_used"`
}

type StatusStatistic struct {
	Status    string  `json:"status"`
	Count     int64   `json:"count"`
	TotalDays float64 `json:"total_days"`
}

type StatisticsResponse struct {
	Year     int               `json:"year"`
	ByStatus []StatusStatistic `json:"by_status"`
}
