package audit

import (
	"context"
	"time"

	"go-hrledger/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBLogger persists audit entries through GORM. Write failures are
// downgraded to a log line; the domain operation that produced the
// entry has already committed and must not be failed retroactively.
type DBLogger struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewDBLogger(db *gorm.DB, logger ...*zap.Logger) *DBLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &DBLogger{db: db, logger: l}
}

func (a *DBLogger) Log(ctx context.Context, entry Entry) {
	row := AuditLog{
		Action:       entry.Action,
		Module:       entry.Module,
		EntityType:   entry.EntityType,
		EntityID:     entry.EntityID,
		Status:       entry.Status,
		PreviousData: entry.PreviousData,
		NewData:      entry.NewData,
		Metadata:     entry.Metadata,
	}
	if row.Status == "" {
		row.Status = StatusSuccess
	}

	performedBy, err := uuid.Parse(entry.PerformedBy)
	if err != nil {
		a.logger.Warn("audit entry has invalid performer, dropping",
			zap.String("action", entry.Action),
			zap.String("performed_by", entry.PerformedBy),
		)
		return
	}
	row.PerformedBy = performedBy

	if entry.EmployeeID != "" {
		if employeeID, err := uuid.Parse(entry.EmployeeID); err == nil {
			row.EmployeeID = &employeeID
		}
	}

	if rid := contextutil.GetRequestID(ctx); rid != "" {
		if row.Metadata == nil {
			row.Metadata = map[string]any{}
		}
		row.Metadata["request_id"] = rid
	}

	if err := a.db.WithContext(ctx).Create(&row).Error; err != nil {
		a.logger.Error("audit write failed",
			zap.String("action", entry.Action),
			zap.String("entity_id", entry.EntityID),
			zap.Error(err),
		)
	}
}

// StdoutLogger is the no-database fallback used by workers and tests.
type StdoutLogger struct{}

func NewStdoutLogger() *StdoutLogger {
	return &StdoutLogger{}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Entry) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("module", entry.Module),
		zap.String("entity_id", entry.EntityID),
		zap.String("performed_by", entry.PerformedBy),
		zap.Any("metadata", entry.Metadata),
	)
}
