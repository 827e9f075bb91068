package leave

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"go-hrledger/internal/audit"
	leaveerrors "go-hrledger/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"

	TypeCasual    = "CASUAL"
	TypeSick      = "SICK"
	TypePaid      = "PAID"
	TypeUnpaid    = "UNPAID"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
)

// entitledTypes are the types debited against a capped entitlement.
// Maternity/paternity requests are tracked on the request itself and
// unpaid leave only accumulates a used counter.
var entitledTypes = map[string]bool{
	TypeCasual: true,
	TypeSick:   true,
	TypePaid:   true,
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, reviewerID, id string, remarks *string) (LeaveResponse, error)
	Reject(ctx context.Context, reviewerID, id, remarks string) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
	GetMyLeaves(ctx context.Context, employeeID string, q LeaveQuery) ([]LeaveResponse, int64, error)
	GetAll(ctx context.Context, q LeaveQuery) ([]LeaveResponse, int64, error)
	GetPending(ctx context.Context, q LeaveQuery) ([]LeaveResponse, int64, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Statistics(ctx context.Context, year int) (StatisticsResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	auditLog audit.Logger
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, auditLog audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, auditLog: auditLog, logger: l}
}

func (s *service) Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	employeeUUID, startDate, endDate, err := validateApplyRequest(employeeID, req)
	if err != nil {
		s.logger.Warn("apply leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	totalDays := computeTotalDays(startDate, endDate, req.IsHalfDay)

	overlap, err := qtx.HasOverlapping(ctx, employeeID, startDate, endDate)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("apply leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	// Advisory check only: the authoritative debit happens at approval.
	if entitledTypes[req.LeaveType] {
		balance, err := qtx.EnsureBalance(ctx, employeeID, startDate.Year())
		if err != nil {
			s.logger.Error("apply leave balance load failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		if remainingFor(balance, req.LeaveType) < totalDays {
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
	}

	l := &LeaveRequest{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		LeaveType:     req.LeaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalDays:     totalDays,
		Reason:        req.Reason,
		IsHalfDay:     req.IsHalfDay,
		HalfDayPeriod: req.HalfDayPeriod,
		Status:        StatusPending,
		Attachments:   req.Attachments,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.audit(ctx, employeeID, employeeID, "LEAVE_APPLIED", l.ID.String(), map[string]any{
		"leave_type": l.LeaveType,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
		"total_days": l.TotalDays,
	})
	s.logger.Info("apply leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Float64("total_days", totalDays),
	)

	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, reviewerID, id string, remarks *string) (LeaveResponse, error) {
	s.logger.Debug("approve leave requested",
		zap.String("leave_id", id),
		zap.String("reviewer_id", reviewerID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("approve leave invalid status",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.NotPending(l.Status)
	}

	// Authoritative debit: a conditional update on the balance row.
	// Losing the race (or an over-committed advisory check) surfaces
	// here as insufficient balance and the request stays pending.
	if l.LeaveType != TypeUnpaid {
		if entitledTypes[l.LeaveType] {
			if _, err := qtx.EnsureBalance(ctx, l.EmployeeID.String(), l.StartDate.Year()); err != nil {
				s.logger.Error("approve leave balance ensure failed", zap.Error(err))
				return LeaveResponse{}, err
			}
			debited, err := qtx.TryDebit(ctx, l.EmployeeID.String(), l.StartDate.Year(), l.LeaveType, l.TotalDays)
			if err != nil {
				s.logger.Error("approve leave balance debit failed", zap.Error(err))
				return LeaveResponse{}, err
			}
			if !debited {
				return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
			}
		}
	} else {
		if _, err := qtx.EnsureBalance(ctx, l.EmployeeID.String(), l.StartDate.Year()); err != nil {
			return LeaveResponse{}, err
		}
		if _, err := qtx.TryDebit(ctx, l.EmployeeID.String(), l.StartDate.Year(), TypeUnpaid, l.TotalDays); err != nil {
			s.logger.Error("approve leave unpaid counter failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	now := time.Now().UTC()
	l.Status = StatusApproved
	l.ReviewedBy = &reviewerUUID
	l.ReviewedAt = &now
	l.ReviewRemarks = remarks

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("approve leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("approve leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.audit(ctx, l.EmployeeID.String(), reviewerID, "LEAVE_APPROVED", id, map[string]any{
		"leave_type": l.LeaveType,
		"total_days": l.TotalDays,
	})
	s.logger.Info("approve leave success",
		zap.String("leave_id", id),
		zap.String("reviewer_id", reviewerID),
	)

	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, reviewerID, id, remarks string) (LeaveResponse, error) {
	s.logger.Debug("reject leave requested",
		zap.String("leave_id", id),
		zap.String("reviewer_id", reviewerID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("reject leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	reviewerUUID, err := uuid.Parse(reviewerID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if remarks == "" {
		return LeaveResponse{}, leaveerrors.ErrRemarksRequired
	}

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.NotPending(l.Status)
	}

	now := time.Now().UTC()
	l.Status = StatusRejected
	l.ReviewedBy = &reviewerUUID
	l.ReviewedAt = &now
	l.ReviewRemarks = &remarks

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("reject leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("reject leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.audit(ctx, l.EmployeeID.String(), reviewerID, "LEAVE_REJECTED", id, map[string]any{
		"remarks": remarks,
	})
	s.logger.Info("reject leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(actorID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotRequestOwner
	}
	if l.Status == StatusCancelled {
		return LeaveResponse{}, leaveerrors.ErrAlreadyCancelled
	}
	if l.Status == StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrCannotCancelRejected
	}

	// Cancelling an approved request refunds the debited days.
	if l.Status == StatusApproved && (entitledTypes[l.LeaveType] || l.LeaveType == TypeUnpaid) {
		if err := qtx.Credit(ctx, l.EmployeeID.String(), l.StartDate.Year(), l.LeaveType, l.TotalDays); err != nil {
			s.logger.Error("cancel leave balance credit failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	previousStatus := l.Status
	l.Status = StatusCancelled

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.audit(ctx, l.EmployeeID.String(), actorID, "LEAVE_CANCELLED", id, map[string]any{
		"previous_status": previousStatus,
		"total_days":      l.TotalDays,
	})
	s.logger.Info("cancel leave success",
		zap.String("leave_id", id),
		zap.String("previous_status", previousStatus),
	)

	return mapToResponse(*l), nil
}

func (s *service) GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return BalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	balance, err := s.repo.EnsureBalance(ctx, employeeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}

	return mapToBalanceResponse(*balance), nil
}

func (s *service) GetMyLeaves(ctx context.Context, employeeID string, q LeaveQuery) ([]LeaveResponse, int64, error) {
	q.EmployeeID = employeeID
	return s.list(ctx, q)
}

func (s *service) GetAll(ctx context.Context, q LeaveQuery) ([]LeaveResponse, int64, error) {
	return s.list(ctx, q)
}

func (s *service) GetPending(ctx context.Context, q LeaveQuery) ([]LeaveResponse, int64, error) {
	q.Status = StatusPending
	return s.list(ctx, q)
}

func (s *service) list(ctx context.Context, q LeaveQuery) ([]LeaveResponse, int64, error) {
	leaves, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(leaves), total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) Statistics(ctx context.Context, year int) (StatisticsResponse, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	stats, err := s.repo.StatusStatistics(ctx, year)
	if err != nil {
		return StatisticsResponse{}, err
	}

	return StatisticsResponse{Year: year, ByStatus: stats}, nil
}

func (s *service) audit(ctx context.Context, employeeID, performedBy, action, entityID string, metadata map[string]any) {
	if s.auditLog == nil {
		return
	}
	s.auditLog.Log(ctx, audit.Entry{
		EmployeeID:  employeeID,
		PerformedBy: performedBy,
		Action:      action,
		Module:      "leave",
		EntityType:  "leave_request",
		EntityID:    entityID,
		Status:      audit.StatusSuccess,
		Metadata:    metadata,
	})
}

func validateApplyRequest(employeeID string, req ApplyLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	if _, ok := usedColumn[req.LeaveType]; !ok && req.LeaveType != TypeMaternity && req.LeaveType != TypePaternity {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidLeaveType
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	if startDate.Before(today()) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrBackdatedRequest
	}
	if req.IsHalfDay && (req.HalfDayPeriod == nil || *req.HalfDayPeriod == "") {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrHalfDayPeriodRequired
	}

	return employeeUUID, startDate, endDate, nil
}

func computeTotalDays(startDate, endDate time.Time, isHalfDay bool) float64 {
	if isHalfDay {
		return 0.5
	}
	return math.Ceil(endDate.Sub(startDate).Hours()/24) + 1
}

func remainingFor(b *LeaveBalance, leaveType string) float64 {
	switch leaveType {
	case TypeCasual:
		return b.CasualTotal - b.CasualUsed
	case TypeSick:
		return b.SickTotal - b.SickUsed
	case TypePaid:
		return b.PaidTotal - b.PaidUsed
	default:
		return 0
	}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		EmployeeID:    l.EmployeeID.String(),
		LeaveType:     l.LeaveType,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		TotalDays:     l.TotalDays,
		Reason:        l.Reason,
		IsHalfDay:     l.IsHalfDay,
		HalfDayPeriod: l.HalfDayPeriod,
		Status:        l.Status,
		Attachments:   l.Attachments,
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	resp.ReviewRemarks = l.ReviewRemarks
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

func mapToBalanceResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		EmployeeID: b.EmployeeID.String(),
		Year:       b.Year,
		Casual: TypeBalance{
			Total:     b.CasualTotal,
			Used:      b.CasualUsed,
			Remaining: b.CasualTotal - b.CasualUsed,
		},
		Sick: TypeBalance{
			Total:     b.SickTotal,
			Used:      b.SickUsed,
			Remaining: b.SickTotal - b.SickUsed,
		},
		Paid: TypeBalance{
			Total:     b.PaidTotal,
			Used:      b.PaidUsed,
			Remaining: b.PaidTotal - b.PaidUsed,
		},
		UnpaidUsed: b.UnpaidUsed,
	}
}
