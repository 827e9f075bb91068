package salary

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *SalaryRecord) error
	FindByID(ctx context.Context, id string) (*SalaryRecord, error)
	Update(ctx context.Context, s *SalaryRecord) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q SalaryQuery) ([]SalaryRecord, int64, error)
	ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error)
	StatusStatistics(ctx context.Context, year int, department string) ([]StatusStatistic, error)
	MonthlyStatistics(ctx context.Context, year int, department string) ([]MonthStatistic, error)
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
// so the record write and the outbox insert share one commit. Without a
// transaction, statements run on the pool.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, s *SalaryRecord) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryRecord, error) {
	var s SalaryRecord
	err := r.conn(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) Update(ctx context.Context, s *SalaryRecord) error {
	return r.conn(ctx).Save(s).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&SalaryRecord{}, "id = ?", id).Error
}

func (r *repository) List(ctx context.Context, q SalaryQuery) ([]SalaryRecord, int64, error) {
	db := r.conn(ctx).Model(&SalaryRecord{})

	if q.EmployeeID != "" {
		db = db.Where("salary_records.employee_id = ?", q.EmployeeID)
	}
	if q.Month > 0 {
		db = db.Where("salary_records.month = ?", q.Month)
	}
	if q.Year > 0 {
		db = db.Where("salary_records.year = ?", q.Year)
	}
	if q.Status != "" {
		db = db.Where("salary_records.status = ?", q.Status)
	}
	if q.Department != "" {
		db = db.Joins("JOIN employees ON employees.id = salary_records.employee_id").
			Where("employees.department = ?", q.Department)
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

	var records []SalaryRecord
	err := db.
		Order("salary_records.year DESC, salary_records.month DESC, salary_records.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	return records, total, err
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, month, year int) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&SalaryRecord{}).
		Where("employee_id = ?", employeeID).
		Where("month = ?", month).
		Where("year = ?", year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) StatusStatistics(ctx context.Context, year int, department string) ([]StatusStatistic, error) {
	db := r.conn(ctx).
		Model(&SalaryRecord{}).
		Select(
			"salary_records.status",
			"COUNT(*) AS count",
			"COALESCE(ROUND(SUM(salary_records.net_salary)::numeric, 2), 0) AS total_net",
			"COALESCE(ROUND(AVG(salary_records.net_salary)::numeric, 2), 0) AS avg_net",
		).
		Where("salary_records.year = ?", year)
	if department != "" {
		db = db.Joins("JOIN employees ON employees.id = salary_records.employee_id").
			Where("employees.department = ?", department)
	}

	var stats []StatusStatistic
	err := db.Group("salary_records.status").Scan(&stats).Error
	return stats, err
}

func (r *repository) MonthlyStatistics(ctx context.Context, year int, department string) ([]MonthStatistic, error) {
	db := r.conn(ctx).
		Model(&SalaryRecord{}).
		Select(
			"salary_records.month",
			"COUNT(*) AS count",
			"COALESCE(ROUND(SUM(salary_records.net_salary)::numeric, 2), 0) AS total_net",
		).
		Where("salary_records.year = ?", year)
	if department != "" {
		db = db.Joins("JOIN employees ON employees.id = salary_records.employee_id").
			Where("employees.department = ?", department)
	}

	var stats []MonthStatistic
	err := db.Group("salary_records.month").Order("salary_records.month ASC").Scan(&stats).Error
	return stats, err
}
