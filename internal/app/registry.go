package app

import (
	"database/sql"
	"fmt"

	"go-hrledger/internal/audit"
	"go-hrledger/internal/employee"
	"go-hrledger/internal/leave"
	"go-hrledger/internal/messaging/kafka"
	"go-hrledger/internal/middleware"
	"go-hrledger/internal/rbac"
	"go-hrledger/internal/salary"
	"go-hrledger/internal/shared/connection"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Registry holds every process-wide dependency, constructed once and
// passed by reference to request-scoped callers.
type Registry struct {
	Config   Config
	DB       *gorm.DB
	SQLDB    *sql.DB
	Redis    *redis.Client
	Enforcer *casbin.Enforcer

	AuditLogger audit.Logger
	Outbox      kafka.OutboxRepository

	EmployeeHandler *employee.Handler
	LeaveHandler    *leave.Handler
	SalaryHandler   *salary.Handler
}

func BuildRegistry(cfg Config) (*Registry, error) {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	if err := db.AutoMigrate(
		&employee.Employee{},
		&leave.LeaveRequest{},
		&leave.LeaveBalance{},
		&salary.SalaryRecord{},
		&audit.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	enforcer, err := rbac.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}

	auditLogger := audit.NewDBLogger(db)
	outbox := kafka.NewOutboxRepository(sqlDB)

	employeeRepo := employee.NewRepository(db)
	leaveRepo := leave.NewRepository(db)
	salaryRepo := salary.NewRepository(db)

	employeeService := employee.NewService(employeeRepo, rdb)
	leaveService := leave.NewService(sqlDB, leaveRepo, auditLogger)
	salaryService := salary.NewService(sqlDB, salaryRepo, employeeRepo, outbox, auditLogger)

	return &Registry{
		Config:          cfg,
		DB:              db,
		SQLDB:           sqlDB,
		Redis:           rdb,
		Enforcer:        enforcer,
		AuditLogger:     auditLogger,
		Outbox:          outbox,
		EmployeeHandler: employee.NewHandler(employeeService),
		LeaveHandler:    leave.NewHandler(leaveService),
		SalaryHandler:   salary.NewHandler(salaryService, rdb),
	}, nil
}

// MountRoutes attaches the global middleware chain and every module's
// route group under /api/v1.
func (reg *Registry) MountRoutes(r *gin.Engine) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := r.Group("/api/v1")

	employee.RegisterRoutes(api, reg.EmployeeHandler, reg.Enforcer)
	leave.RegisterRoutes(api, reg.LeaveHandler, reg.Enforcer)
	salary.RegisterRoutes(api, reg.SalaryHandler, reg.Enforcer, reg.Redis)
}
