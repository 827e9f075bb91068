package app

import (
	"os"
	"time"
)

type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr    string
	KafkaBroker  string
	KafkaGroupID string

	RBACModelPath  string
	RBACPolicyPath string

	PayslipDir         string
	OutboxPollInterval time.Duration
}

func LoadConfig() Config {
	interval := 3 * time.Second
	if v := os.Getenv("OUTBOX_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			interval = d
		}
	}

	return Config{
		Port:               envOr("PORT", "3000"),
		DBHost:             envOr("DB_HOST", "localhost"),
		DBUser:             envOr("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             envOr("DB_NAME", "hrledger"),
		DBPort:             envOr("DB_PORT", "5432"),
		DBSSLMode:          envOr("DB_SSLMODE", "disable"),
		RedisAddr:          envOr("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:        envOr("KAFKA_BROKER", "localhost:9092"),
		KafkaGroupID:       envOr("KAFKA_GROUP_ID", "hrledger-payslip"),
		RBACModelPath:      envOr("RBAC_MODEL_PATH", "internal/rbac/model.conf"),
		RBACPolicyPath:     envOr("RBAC_POLICY_PATH", "internal/rbac/policy.csv"),
		PayslipDir:         envOr("PAYSLIP_DIR", "payslips"),
		OutboxPollInterval: interval,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
