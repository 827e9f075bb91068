package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-hrledger/internal/leave"
	leaveerrors "go-hrledger/internal/leave/errors"
)

type fakeLeaveRepo struct {
	createFn         func(ctx context.Context, l *leave.LeaveRequest) error
	findByIDFn       func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	updateFn         func(ctx context.Context, l *leave.LeaveRequest) error
	listFn           func(ctx context.Context, q leave.LeaveQuery) ([]leave.LeaveRequest, int64, error)
	hasOverlappingFn func(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	getBalanceFn     func(ctx context.Context, employeeID string, year int) (*leave.LeaveBalance, error)
	ensureBalanceFn  func(ctx context.Context, employeeID string, year int) (*leave.LeaveBalance, error)
	tryDebitFn       func(ctx context.Context, employeeID string, year int, leaveType string, days float64) (bool, error)
	creditFn         func(ctx context.Context, employeeID string, year int, leaveType string, days float64) error
	statisticsFn     func(ctx context.Context, year int) ([]leave.StatusStatistic, error)
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return f }

func (f *fakeLeaveRepo) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepo) Update(ctx context.Context, l *leave.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, q leave.LeaveQuery) ([]leave.LeaveRequest, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, q)
	}
	return nil, 0, nil
}

func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	if f.hasOverlappingFn != nil {
		return f.hasOverlappingFn(ctx, employeeID, start, end)
	}
	return false, nil
}

func (f *fakeLeaveRepo) GetBalance(ctx context.Context, employeeID string, year int) (*leave.LeaveBalance, error) {
	if f.getBalanceFn != nil {
		return f.getBalanceFn(ctx, employeeID, year)
	}
	return defaultBalance(employeeID, year), nil
}

func (f *fakeLeaveRepo) EnsureBalance(ctx context.Context, employeeID string, year int) (*leave.LeaveBalance, error) {
	if f.ensureBalanceFn != nil {
		return f.ensureBalanceFn(ctx, employeeID, year)
	}
	return defaultBalance(employeeID, year), nil
}

func (f *fakeLeaveRepo) TryDebit(ctx context.Context, employeeID string, year int, leaveType string, days float64) (bool, error) {
	if f.tryDebitFn != nil {
		return f.tryDebitFn(ctx, employeeID, year, leaveType, days)
	}
	return true, nil
}

func (f *fakeLeaveRepo) Credit(ctx context.Context, employeeID string, year int, leaveType string, days float64) error {
	if f.creditFn != nil {
		return f.creditFn(ctx, employeeID, year, leaveType, days)
	}
	return nil
}

func (f *fakeLeaveRepo) StatusStatistics(ctx context.Context, year int) ([]leave.StatusStatistic, error) {
	if f.statisticsFn != nil {
		return f.statisticsFn(ctx, year)
	}
	return nil, nil
}

func defaultBalance(employeeID string, year int) *leave.LeaveBalance {
	id, _ := uuid.Parse(employeeID)
	return &leave.LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  id,
		Year:        year,
		CasualTotal: 12,
		SickTotal:   10,
		PaidTotal:   15,
	}
}

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func threeDayRequest() leave.ApplyLeaveRequest {
	return leave.ApplyLeaveRequest{
		LeaveType: leave.TypeCasual,
		StartDate: futureDate(7),
		EndDate:   futureDate(9),
		Reason:    "family event",
	}
}

func TestApply(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var created *leave.LeaveRequest
		repo := &fakeLeaveRepo{
			createFn: func(ctx context.Context, l *leave.LeaveRequest) error {
				created = l
				return nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		resp, err := svc.Apply(context.Background(), employeeID, threeDayRequest())

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3.0, resp.TotalDays)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success half day", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		period := "FIRST_HALF"
		req := leave.ApplyLeaveRequest{
			LeaveType:     leave.TypeSick,
			StartDate:     futureDate(3),
			EndDate:       futureDate(3),
			IsHalfDay:     true,
			HalfDayPeriod: &period,
		}
		svc := leave.NewService(db, &fakeLeaveRepo{}, nil, zap.NewNop())

		resp, err := svc.Apply(context.Background(), employeeID, req)

		assert.NoError(t, err)
		assert.Equal(t, 0.5, resp.TotalDays)
	})

	t.Run("negative overlapping request", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveRepo{
			hasOverlappingFn: func(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
				return true, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		_, err := svc.Apply(context.Background(), employeeID, threeDayRequest())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative insufficient balance", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveRepo{
			ensureBalanceFn: func(ctx context.Context, eid string, year int) (*leave.LeaveBalance, error) {
				b := defaultBalance(eid, year)
				b.CasualUsed = 10.5
				return b, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		_, err := svc.Apply(context.Background(), employeeID, threeDayRequest())

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("negative backdated start", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		req := threeDayRequest()
		req.StartDate = futureDate(-2)
		req.EndDate = futureDate(1)
		svc := leave.NewService(db, &fakeLeaveRepo{}, nil, zap.NewNop())

		_, err := svc.Apply(context.Background(), employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrBackdatedRequest)
	})

	t.Run("negative inverted range", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		req := threeDayRequest()
		req.StartDate = futureDate(9)
		req.EndDate = futureDate(7)
		svc := leave.NewService(db, &fakeLeaveRepo{}, nil, zap.NewNop())

		_, err := svc.Apply(context.Background(), employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("negative half day without period", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		req := threeDayRequest()
		req.IsHalfDay = true
		svc := leave.NewService(db, &fakeLeaveRepo{}, nil, zap.NewNop())

		_, err := svc.Apply(context.Background(), employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrHalfDayPeriodRequired)
	})
}

func pendingRequest(employeeID uuid.UUID, leaveType string, days float64) *leave.LeaveRequest {
	start := time.Now().UTC().AddDate(0, 0, 7)
	return &leave.LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, int(days)-1),
		TotalDays:  days,
		Status:     leave.StatusPending,
	}
}

func TestApprove(t *testing.T) {
	reviewerID := uuid.NewString()
	employeeID := uuid.New()

	t.Run("success debits balance", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		var debitedDays float64
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
			tryDebitFn: func(ctx context.Context, eid string, year int, leaveType string, days float64) (bool, error) {
				debitedDays = days
				return true, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		resp, err := svc.Approve(context.Background(), reviewerID, l.ID.String(), nil)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, 3.0, debitedDays)
		assert.NotNil(t, resp.ReviewedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative insufficient balance at debit", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
			tryDebitFn: func(ctx context.Context, eid string, year int, leaveType string, days float64) (bool, error) {
				return false, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		_, err := svc.Approve(context.Background(), reviewerID, l.ID.String(), nil)

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("negative not pending", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		l.Status = leave.StatusApproved
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		_, err := svc.Approve(context.Background(), reviewerID, l.ID.String(), nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), leave.StatusApproved)
	})

	t.Run("negative not found", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := leave.NewService(db, &fakeLeaveRepo{}, nil, zap.NewNop())

		_, err := svc.Approve(context.Background(), reviewerID, uuid.NewString(), nil)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("unpaid leave skips entitlement check", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		l := pendingRequest(employeeID, leave.TypeUnpaid, 5)
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
			tryDebitFn: func(ctx context.Context, eid string, year int, leaveType string, days float64) (bool, error) {
				// The unpaid counter has no cap, the repo reports no rows
				// matched only when the balance row is missing.
				return true, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		resp, err := svc.Approve(context.Background(), reviewerID, l.ID.String(), nil)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})
}

func TestReject(t *testing.T) {
	reviewerID := uuid.NewString()
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		l := pendingRequest(employeeID, leave.TypeSick, 2)
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		resp, err := svc.Reject(context.Background(), reviewerID, l.ID.String(), "coverage gap")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.NotNil(t, resp.ReviewRemarks)
	})

	t.Run("negative remarks required", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := leave.NewService(db, &fakeLeaveRepo{}, nil, zap.NewNop())

		_, err := svc.Reject(context.Background(), reviewerID, uuid.NewString(), "")

		assert.ErrorIs(t, err, leaveerrors.ErrRemarksRequired)
	})
}

func TestCancel(t *testing.T) {
	employeeID := uuid.New()

	t.Run("success refunds approved leave", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		l.Status = leave.StatusApproved
		var creditedDays float64
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
			creditFn: func(ctx context.Context, eid string, year int, leaveType string, days float64) error {
				creditedDays = days
				return nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		resp, err := svc.Cancel(context.Background(), employeeID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
		assert.Equal(t, 3.0, creditedDays)
	})

	t.Run("success pending leaves balance untouched", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		credited := false
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
			creditFn: func(ctx context.Context, eid string, year int, leaveType string, days float64) error {
				credited = true
				return nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		resp, err := svc.Cancel(context.Background(), employeeID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
		assert.False(t, credited)
	})

	t.Run("negative not owner", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		_, err := svc.Cancel(context.Background(), uuid.NewString(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotRequestOwner)
	})

	t.Run("negative already cancelled", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		l.Status = leave.StatusCancelled
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		_, err := svc.Cancel(context.Background(), employeeID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyCancelled)
	})

	t.Run("negative rejected cannot be cancelled", func(t *testing.T) {
		db, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		l := pendingRequest(employeeID, leave.TypeCasual, 3)
		l.Status = leave.StatusRejected
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return l, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		_, err := svc.Cancel(context.Background(), employeeID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrCannotCancelRejected)
	})
}

// Approve then cancel must return the used counter to its pre-approval
// value exactly.
func TestApproveCancelRoundTrip(t *testing.T) {
	employeeID := uuid.New()
	reviewerID := uuid.NewString()

	used := 0.0
	l := pendingRequest(employeeID, leave.TypeCasual, 3)
	repo := &fakeLeaveRepo{
		findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
			return l, nil
		},
		tryDebitFn: func(ctx context.Context, eid string, year int, leaveType string, days float64) (bool, error) {
			if 12-used < days {
				return false, nil
			}
			used += days
			return true, nil
		},
		creditFn: func(ctx context.Context, eid string, year int, leaveType string, days float64) error {
			used -= days
			if used < 0 {
				used = 0
			}
			return nil
		},
	}

	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := leave.NewService(db, repo, nil, zap.NewNop())

	_, err := svc.Approve(context.Background(), reviewerID, l.ID.String(), nil)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, used)

	_, err = svc.Cancel(context.Background(), employeeID.String(), l.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, 0.0, used)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalance(t *testing.T) {
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		db, _ := newTxDB(t)
		repo := &fakeLeaveRepo{
			ensureBalanceFn: func(ctx context.Context, eid string, year int) (*leave.LeaveBalance, error) {
				b := defaultBalance(eid, year)
				b.CasualUsed = 3
				return b, nil
			},
		}
		svc := leave.NewService(db, repo, nil, zap.NewNop())

		resp, err := svc.GetBalance(context.Background(), employeeID.String(), 2025)

		assert.NoError(t, err)
		assert.Equal(t, 12.0, resp.Casual.Total)
		assert.Equal(t, 3.0, resp.Casual.Used)
		assert.Equal(t, 9.0, resp.Casual.Remaining)
	})

	t.Run("negative invalid employee id", func(t *testing.T) {
		db, _ := newTxDB(t)
		svc := leave.NewService(db, &fakeLeaveRepo{}, nil, zap.NewNop())

		_, err := svc.GetBalance(context.Background(), "not-a-uuid", 2025)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
	})
}
