package leave

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// usedColumn whitelists the ledger column per paid leave type; raw SQL
// below interpolates column names, never values.
var usedColumn = map[string]string{
	TypeCasual: "casual_used",
	TypeSick:   "sick_used",
	TypePaid:   "paid_used",
	TypeUnpaid: "unpaid_used",
}

var totalColumn = map[string]string{
	TypeCasual: "casual_total",
	TypeSick:   "sick_total",
	TypePaid:   "paid_total",
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	List(ctx context.Context, q LeaveQuery) ([]LeaveRequest, int64, error)
	HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)
	GetBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error)
	EnsureBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error)
	TryDebit(ctx context.Context, employeeID string, year int, leaveType string, days float64) (bool, error)
	Credit(ctx context.Context, employeeID string, year int, leaveType string, days float64) error
	StatusStatistics(ctx context.Context, year int) ([]StatusStatistic, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// conn returns a session bound to the transaction handed in via WithTx,
// so the request update and the balance mutation commit or roll back as
// one unit. Without a transaction, statements run on the pool.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Save(l).Error
}

func (r *repository) List(ctx context.Context, q LeaveQuery) ([]LeaveRequest, int64, error) {
	db := r.conn(ctx).Model(&LeaveRequest{})

	if q.Status != "" {
		db = db.Where("leave_requests.status = ?", q.Status)
	}
	if q.LeaveType != "" {
		db = db.Where("leave_requests.leave_type = ?", q.LeaveType)
	}
	if q.EmployeeID != "" {
		db = db.Where("leave_requests.employee_id = ?", q.EmployeeID)
	}
	if q.Department != "" {
		db = db.Joins("JOIN employees ON employees.id = leave_requests.employee_id").
			Where("employees.department = ?", q.Department)
	}
	if q.From != "" {
		db = db.Where("leave_requests.start_date >= ?", q.From)
	}
	if q.To != "" {
		db = db.Where("leave_requests.end_date <= ?", q.To)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var leaves []LeaveRequest
	err := db.
		Order("leave_requests.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&leaves).Error
	return leaves, total, err
}

func (r *repository) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) GetBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		First(&b).Error
	return &b, err
}

// EnsureBalance lazily creates the yearly ledger with default
// entitlements. ON CONFLICT DO NOTHING keeps concurrent first
// references from racing the unique (employee_id, year) index.
func (r *repository) EnsureBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error) {
	err := r.conn(ctx).Exec(`
		INSERT INTO leave_balances (id, employee_id, year, casual_total, casual_used, sick_total, sick_used, paid_total, paid_used, unpaid_used, created_at, updated_at)
		VALUES (gen_random_uuid(), ?, ?, 12, 0, 10, 0, 15, 0, 0, now(), now())
		ON CONFLICT (employee_id, year) DO NOTHING
	`, employeeID, year).Error
	if err != nil {
		return nil, err
	}

	return r.GetBalance(ctx, employeeID, year)
}

// TryDebit is the authoritative balance check: a single conditional
// UPDATE that only lands when enough remains, serialized by the store
// on the balance row. Returns false when the debit would drive the
// remaining entitlement negative.
func (r *repository) TryDebit(ctx context.Context, employeeID string, year int, leaveType string, days float64) (bool, error) {
	used, ok := usedColumn[leaveType]
	if !ok {
		return false, fmt.Errorf("unknown leave type: %s", leaveType)
	}

	// Unpaid leave has no entitlement cap, only a used counter.
	if leaveType == TypeUnpaid {
		res := r.conn(ctx).Exec(fmt.Sprintf(`
			UPDATE leave_balances
			SET %s = %s + ?, updated_at = now()
			WHERE employee_id = ? AND year = ?
		`, used, used), days, employeeID, year)
		return res.RowsAffected > 0, res.Error
	}

	total := totalColumn[leaveType]
	res := r.conn(ctx).Exec(fmt.Sprintf(`
		UPDATE leave_balances
		SET %s = %s + ?, updated_at = now()
		WHERE employee_id = ? AND year = ? AND %s - %s >= ?
	`, used, used, total, used), days, employeeID, year, days)
	return res.RowsAffected > 0, res.Error
}

// Credit refunds days on cancel-of-approved. GREATEST keeps a stray
// double-credit from pushing the used counter below zero.
func (r *repository) Credit(ctx context.Context, employeeID string, year int, leaveType string, days float64) error {
	used, ok := usedColumn[leaveType]
	if !ok {
		return fmt.Errorf("unknown leave type: %s", leaveType)
	}

	return r.conn(ctx).Exec(fmt.Sprintf(`
		UPDATE leave_balances
		SET %s = GREATEST(%s - ?, 0), updated_at = now()
		WHERE employee_id = ? AND year = ?
	`, used, used), days, employeeID, year).Error
}

func (r *repository) StatusStatistics(ctx context.Context, year int) ([]StatusStatistic, error) {
	var stats []StatusStatistic
	err := r.conn(ctx).
		Model(&LeaveRequest{}).
		Select("status", "COUNT(*) AS count", "COALESCE(SUM(total_days), 0) AS total_days").
		Where("EXTRACT(YEAR FROM start_date) = ?", year).
		Group("status").
		Scan(&stats).Error
	return stats, err
}
