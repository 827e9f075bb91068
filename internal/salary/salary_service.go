package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-hrledger/internal/audit"
	"go-hrledger/internal/employee"
	"go-hrledger/internal/events"
	"go-hrledger/internal/messaging/kafka"
	salaryerrors "go-hrledger/internal/salary/errors"
	"go-hrledger/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
	StatusOnHold    = "ON_HOLD"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusProcessed: true,
	StatusPaid:      true,
	StatusOnHold:    true,
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, creatorID string, req CreateSalaryRequest) (SalaryResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateSalaryRequest) (SalaryResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (SalaryResponse, error)
	ProcessPayment(ctx context.Context, actorID, id string, req ProcessPaymentRequest) (SalaryResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	GenerateBulk(ctx context.Context, creatorID string, req BulkGenerateRequest) (BulkGenerateResponse, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	GetMySalaries(ctx context.Context, employeeID string, q SalaryQuery) ([]SalaryResponse, int64, error)
	GetAll(ctx context.Context, q SalaryQuery) ([]SalaryResponse, int64, error)
	Statistics(ctx context.Context, year int, department string) (StatisticsResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	auditLog  audit.Logger
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outbox kafka.OutboxRepository,
	auditLog audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outbox,
		auditLog:  auditLog,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, creatorID string, req CreateSalaryRequest) (SalaryResponse, error) {
	s.logger.Debug("create salary requested",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	creatorUUID, err := uuid.Parse(creatorID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := s.buildRecord(ctx, qtx, creatorUUID, req)
	if err != nil {
		s.logger.Warn("create salary validation failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	// The unique (employee_id, month, year) index closes the race the
	// ExistsForPeriod check leaves open.
	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("create salary persist failed", zap.Error(err))
		return SalaryResponse{}, mapPersistError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	s.audit(ctx, record.EmployeeID.String(), creatorID, "SALARY_CREATED", record.ID.String(), nil, map[string]any{
		"month":      record.Month,
		"year":       record.Year,
		"net_salary": record.NetSalary,
	})
	s.logger.Info("create salary success",
		zap.String("salary_id", record.ID.String()),
		zap.String("employee_id", record.EmployeeID.String()),
		zap.Float64("net_salary", record.NetSalary),
	)

	return mapToResponse(*record), nil
}

// buildRecord runs the single-point validation for a new record and
// derives the stored amounts.
func (s *service) buildRecord(ctx context.Context, qtx Repository, creator uuid.UUID, req CreateSalaryRequest) (*SalaryRecord, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, salaryerrors.ErrInvalidEmployeeID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return nil, salaryerrors.ErrInvalidPeriod
	}
	if req.PresentDays+req.AbsentDays > req.WorkingDays {
		return nil, salaryerrors.ErrInvalidAttendance
	}

	exists, err := s.employees.Exists(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, salaryerrors.ErrEmployeeNotFound
	}

	taken, err := qtx.ExistsForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, salaryerrors.ErrSalaryAlreadyExists
	}

	var creditDate *time.Time
	if req.CreditDate != nil && *req.CreditDate != "" {
		d, err := time.Parse("2006-01-02", *req.CreditDate)
		if err != nil {
			return nil, salaryerrors.ErrInvalidDateFormat
		}
		creditDate = &d
	}

	structure := structureFromRequest(req.Structure)
	amounts := computeAmounts(structure, req.IsProrated, req.PresentDays, req.WorkingDays)

	return &SalaryRecord{
		ID:                 uuid.New(),
		EmployeeID:         employeeUUID,
		Month:              req.Month,
		Year:               req.Year,
		Basic:              structure.Basic,
		HRA:                structure.HRA,
		MedicalAllowance:   structure.MedicalAllowance,
		TransportAllowance: structure.TransportAllowance,
		SpecialAllowance:   structure.SpecialAllowance,
		Bonus:              structure.Bonus,
		ProvidentFund:      structure.ProvidentFund,
		ProfessionalTax:    structure.ProfessionalTax,
		IncomeTax:          structure.IncomeTax,
		OtherDeductions:    structure.OtherDeductions,
		GrossSalary:        amounts.Gross,
		TotalDeductions:    amounts.TotalDeductions,
		NetSalary:          amounts.Net,
		WorkingDays:        req.WorkingDays,
		PresentDays:        req.PresentDays,
		LeaveDays:          req.LeaveDays,
		AbsentDays:         req.AbsentDays,
		IsProrated:         req.IsProrated,
		Status:             StatusPending,
		CreditDate:         creditDate,
		Remarks:            req.Remarks,
		CreatedBy:          creator,
	}, nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateSalaryRequest) (SalaryResponse, error) {
	s.logger.Debug("update salary requested", zap.String("salary_id", id))

	if _, err := uuid.Parse(actorID); err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	if record.Status == StatusPaid {
		s.logger.Warn("update salary rejected, record is paid", zap.String("salary_id", id))
		return SalaryResponse{}, salaryerrors.ErrPaidImmutable
	}

	previous := map[string]any{
		"gross_salary": record.GrossSalary,
		"net_salary":   record.NetSalary,
		"status":       record.Status,
	}

	if err := applyUpdate(record, req); err != nil {
		s.logger.Warn("update salary validation failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	amounts := computeAmounts(structureFromRecord(record), record.IsProrated, record.PresentDays, record.WorkingDays)
	record.GrossSalary = amounts.Gross
	record.TotalDeductions = amounts.TotalDeductions
	record.NetSalary = amounts.Net

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("update salary persist failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary commit failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, err
	}

	s.audit(ctx, record.EmployeeID.String(), actorID, "SALARY_UPDATED", id, previous, map[string]any{
		"gross_salary": record.GrossSalary,
		"net_salary":   record.NetSalary,
	})
	s.logger.Info("update salary success", zap.String("salary_id", id))

	return mapToResponse(*record), nil
}

// applyUpdate shallow-merges the provided fields onto the record and
// re-validates the attendance counters afterwards.
func applyUpdate(record *SalaryRecord, req UpdateSalaryRequest) error {
	if st := req.Structure; st != nil {
		setIf(&record.Basic, st.Basic)
		setIf(&record.HRA, st.HRA)
		setIf(&record.MedicalAllowance, st.MedicalAllowance)
		setIf(&record.TransportAllowance, st.TransportAllowance)
		setIf(&record.SpecialAllowance, st.SpecialAllowance)
		setIf(&record.Bonus, st.Bonus)
		setIf(&record.ProvidentFund, st.ProvidentFund)
		setIf(&record.ProfessionalTax, st.ProfessionalTax)
		setIf(&record.IncomeTax, st.IncomeTax)
		setIf(&record.OtherDeductions, st.OtherDeductions)
	}
	if req.WorkingDays != nil {
		record.WorkingDays = *req.WorkingDays
	}
	if req.PresentDays != nil {
		record.PresentDays = *req.PresentDays
	}
	if req.LeaveDays != nil {
		record.LeaveDays = *req.LeaveDays
	}
	if req.AbsentDays != nil {
		record.AbsentDays = *req.AbsentDays
	}
	if req.IsProrated != nil {
		record.IsProrated = *req.IsProrated
	}
	if req.CreditDate != nil && *req.CreditDate != "" {
		d, err := time.Parse("2006-01-02", *req.CreditDate)
		if err != nil {
			return salaryerrors.ErrInvalidDateFormat
		}
		record.CreditDate = &d
	}
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	if record.PresentDays+record.AbsentDays > record.WorkingDays {
		return salaryerrors.ErrInvalidAttendance
	}
	return nil
}

func setIf(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateStatusRequest) (SalaryResponse, error) {
	s.logger.Debug("update salary status requested",
		zap.String("salary_id", id),
		zap.String("status", req.Status),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidActorID
	}
	if !validStatuses[req.Status] {
		return SalaryResponse{}, salaryerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update salary status begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}

	previousStatus := record.Status
	record.Status = req.Status
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	// Entering PAID stamps the processor; the notification fires only
	// on the first transition into PAID.
	notify := req.Status == StatusPaid && previousStatus != StatusPaid
	if notify {
		now := time.Now().UTC()
		record.ProcessedBy = &actorUUID
		record.ProcessedAt = &now
		if err := s.enqueueSalaryPaid(ctx, tx, record); err != nil {
			s.logger.Error("update salary status notification enqueue failed", zap.Error(err))
			return SalaryResponse{}, err
		}
	}

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("update salary status persist failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update salary status commit failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, err
	}

	s.audit(ctx, record.EmployeeID.String(), actorID, "SALARY_STATUS_UPDATED", id,
		map[string]any{"status": previousStatus},
		map[string]any{"status": record.Status},
	)
	s.logger.Info("update salary status success",
		zap.String("salary_id", id),
		zap.String("previous_status", previousStatus),
		zap.String("status", record.Status),
		zap.Bool("notified", notify),
	)

	return mapToResponse(*record), nil
}

func (s *service) ProcessPayment(ctx context.Context, actorID, id string, req ProcessPaymentRequest) (SalaryResponse, error) {
	s.logger.Debug("process salary payment requested", zap.String("salary_id", id))

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("process payment begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	if record.Status == StatusPaid {
		s.logger.Warn("process payment rejected, already paid", zap.String("salary_id", id))
		return SalaryResponse{}, salaryerrors.ErrAlreadyPaid
	}

	actualCreditDate := time.Now().UTC()
	if req.ActualCreditDate != nil && *req.ActualCreditDate != "" {
		d, err := time.Parse("2006-01-02", *req.ActualCreditDate)
		if err != nil {
			return SalaryResponse{}, salaryerrors.ErrInvalidDateFormat
		}
		actualCreditDate = d
	}

	now := time.Now().UTC()
	record.Status = StatusPaid
	record.PaymentMethod = &req.PaymentMethod
	record.TransactionID = req.TransactionID
	record.ActualCreditDate = &actualCreditDate
	record.ProcessedBy = &actorUUID
	record.ProcessedAt = &now
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	if err := s.enqueueSalaryPaid(ctx, tx, record); err != nil {
		s.logger.Error("process payment notification enqueue failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("process payment persist failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("process payment commit failed", zap.String("salary_id", id), zap.Error(err))
		return SalaryResponse{}, err
	}

	s.audit(ctx, record.EmployeeID.String(), actorID, "SALARY_PAID", id, nil, map[string]any{
		"payment_method": req.PaymentMethod,
		"net_salary":     record.NetSalary,
	})
	s.logger.Info("process payment success",
		zap.String("salary_id", id),
		zap.String("payment_method", req.PaymentMethod),
	)

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	s.logger.Debug("delete salary requested", zap.String("salary_id", id))

	if _, err := uuid.Parse(actorID); err != nil {
		return salaryerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete salary begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salaryerrors.ErrSalaryNotFound
		}
		return err
	}
	if record.Status == StatusPaid {
		s.logger.Warn("delete salary rejected, record is paid", zap.String("salary_id", id))
		return salaryerrors.ErrPaidUndeletable
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete salary persist failed", zap.String("salary_id", id), zap.Error(err))
		return err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("delete salary commit failed", zap.String("salary_id", id), zap.Error(err))
		return err
	}

	s.audit(ctx, record.EmployeeID.String(), actorID, "SALARY_DELETED", id, map[string]any{
		"month":  record.Month,
		"year":   record.Year,
		"status": record.Status,
	}, nil)
	s.logger.Info("delete salary success", zap.String("salary_id", id))

	return nil
}

func (s *service) GenerateBulk(ctx context.Context, creatorID string, req BulkGenerateRequest) (BulkGenerateResponse, error) {
	s.logger.Debug("bulk generate salaries requested",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.String("department", req.Department),
	)

	if _, err := uuid.Parse(creatorID); err != nil {
		return BulkGenerateResponse{}, salaryerrors.ErrInvalidActorID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return BulkGenerateResponse{}, salaryerrors.ErrInvalidPeriod
	}

	roster, err := s.employees.FindActive(ctx, req.Department)
	if err != nil {
		s.logger.Error("bulk generate roster load failed", zap.Error(err))
		return BulkGenerateResponse{}, err
	}
	if len(roster) == 0 {
		return BulkGenerateResponse{}, salaryerrors.ErrNoEligibleEmployees
	}

	resp := BulkGenerateResponse{
		Month:   req.Month,
		Year:    req.Year,
		Success: []SalaryResponse{},
		Failed:  []BulkFailure{},
	}

	// Each employee gets its own transaction so one duplicate or
	// failure never rolls back the rest of the batch.
	for _, e := range roster {
		created, err := s.Create(ctx, creatorID, CreateSalaryRequest{
			EmployeeID:  e.ID.String(),
			Month:       req.Month,
			Year:        req.Year,
			Structure:   req.DefaultStructure,
			WorkingDays: req.WorkingDays,
			PresentDays: req.WorkingDays,
		})
		if err != nil {
			resp.Failed = append(resp.Failed, BulkFailure{
				EmployeeID: e.ID.String(),
				Reason:     failureReason(err),
			})
			continue
		}
		resp.Success = append(resp.Success, created)
	}

	s.logger.Info("bulk generate salaries finished",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Int("succeeded", len(resp.Success)),
		zap.Int("failed", len(resp.Failed)),
	)

	return resp, nil
}

func failureReason(err error) string {
	if errors.Is(err, salaryerrors.ErrSalaryAlreadyExists) {
		return "Salary already exists"
	}
	return err.Error()
}

func (s *service) GetByID(ctx context.Context, id string) (SalaryResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		return SalaryResponse{}, err
	}
	return mapToResponse(*record), nil
}

func (s *service) GetMySalaries(ctx context.Context, employeeID string, q SalaryQuery) ([]SalaryResponse, int64, error) {
	q.EmployeeID = employeeID
	return s.list(ctx, q)
}

func (s *service) GetAll(ctx context.Context, q SalaryQuery) ([]SalaryResponse, int64, error) {
	return s.list(ctx, q)
}

func (s *service) list(ctx context.Context, q SalaryQuery) ([]SalaryResponse, int64, error) {
	records, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(records), total, nil
}

func (s *service) Statistics(ctx context.Context, year int, department string) (StatisticsResponse, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	byStatus, err := s.repo.StatusStatistics(ctx, year, department)
	if err != nil {
		return StatisticsResponse{}, err
	}
	byMonth, err := s.repo.MonthlyStatistics(ctx, year, department)
	if err != nil {
		return StatisticsResponse{}, err
	}

	return StatisticsResponse{Year: year, Department: department, ByStatus: byStatus, ByMonth: byMonth}, nil
}

// enqueueSalaryPaid writes the payment event to the outbox inside the
// caller's transaction; the producer worker relays it after commit.
func (s *service) enqueueSalaryPaid(ctx context.Context, tx *sql.Tx, record *SalaryRecord) error {
	if s.outbox == nil {
		return nil
	}

	evt := events.SalaryPaidEvent{
		EventType:       "salary.paid",
		SalaryID:        record.ID.String(),
		EmployeeID:      record.EmployeeID.String(),
		Month:           record.Month,
		Year:            record.Year,
		NetSalary:       record.NetSalary,
		GrossSalary:     record.GrossSalary,
		TotalDeductions: record.TotalDeductions,
		CreditDate:      record.ActualCreditDate,
		OccurredAt:      time.Now().UTC(),
	}
	if emp, err := s.employees.FindByID(ctx, record.EmployeeID.String()); err == nil {
		evt.EmployeeName = emp.FullName
		evt.EmployeeEmail = emp.Email
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "salary_record",
		AggregateID:   record.ID.String(),
		EventType:     evt.EventType,
		Topic:         events.SalaryPaidTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) audit(ctx context.Context, employeeID, performedBy, action, entityID string, previous, next map[string]any) {
	if s.auditLog == nil {
		return
	}
	s.auditLog.Log(ctx, audit.Entry{
		EmployeeID:   employeeID,
		PerformedBy:  performedBy,
		Action:       action,
		Module:       "salary",
		EntityType:   "salary_record",
		EntityID:     entityID,
		Status:       audit.StatusSuccess,
		PreviousData: previous,
		NewData:      next,
	})
}

func mapPersistError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return salaryerrors.ErrSalaryAlreadyExists
	}
	return err
}

func structureFromRequest(r StructureRequest) Structure {
	return Structure{
		Basic:              r.Basic,
		HRA:                r.HRA,
		MedicalAllowance:   r.MedicalAllowance,
		TransportAllowance: r.TransportAllowance,
		SpecialAllowance:   r.SpecialAllowance,
		Bonus:              r.Bonus,
		ProvidentFund:      r.ProvidentFund,
		ProfessionalTax:    r.ProfessionalTax,
		IncomeTax:          r.IncomeTax,
		OtherDeductions:    r.OtherDeductions,
	}
}

func structureFromRecord(rec *SalaryRecord) Structure {
	return Structure{
		Basic:              rec.Basic,
		HRA:                rec.HRA,
		MedicalAllowance:   rec.MedicalAllowance,
		TransportAllowance: rec.TransportAllowance,
		SpecialAllowance:   rec.SpecialAllowance,
		Bonus:              rec.Bonus,
		ProvidentFund:      rec.ProvidentFund,
		ProfessionalTax:    rec.ProfessionalTax,
		IncomeTax:          rec.IncomeTax,
		OtherDeductions:    rec.OtherDeductions,
	}
}

func mapToResponse(rec SalaryRecord) SalaryResponse {
	resp := SalaryResponse{
		ID:         rec.ID.String(),
		EmployeeID: rec.EmployeeID.String(),
		Month:      rec.Month,
		Year:       rec.Year,
		Structure: StructureResponse{
			Basic:              rec.Basic,
			HRA:                rec.HRA,
			MedicalAllowance:   rec.MedicalAllowance,
			TransportAllowance: rec.TransportAllowance,
			SpecialAllowance:   rec.SpecialAllowance,
			Bonus:              rec.Bonus,
			ProvidentFund:      rec.ProvidentFund,
			ProfessionalTax:    rec.ProfessionalTax,
			IncomeTax:          rec.IncomeTax,
			OtherDeductions:    rec.OtherDeductions,
		},
		GrossSalary:      rec.GrossSalary,
		TotalDeductions:  rec.TotalDeductions,
		NetSalary:        rec.NetSalary,
		WorkingDays:      rec.WorkingDays,
		PresentDays:      rec.PresentDays,
		LeaveDays:        rec.LeaveDays,
		AbsentDays:       rec.AbsentDays,
		IsProrated:       rec.IsProrated,
		Status:           rec.Status,
		PaymentMethod:    rec.PaymentMethod,
		TransactionID:    rec.TransactionID,
		Remarks:          rec.Remarks,
		CreditDate:       rec.CreditDate,
		ActualCreditDate: rec.ActualCreditDate,
		ProcessedAt:      rec.ProcessedAt,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	if rec.ProcessedBy != nil {
		v := rec.ProcessedBy.String()
		resp.ProcessedBy = &v
	}
	return resp
}

func mapToListResponse(records []SalaryRecord) []SalaryResponse {
	resp := make([]SalaryResponse, len(records))
	for i, rec := range records {
		resp[i] = mapToResponse(rec)
	}
	return resp
}
