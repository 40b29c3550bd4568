package config

import (
	"time"

	"portfolio-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads PostgreSQL settings from environment variables
// and returns a DBConfig ready for the connection pool.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	cfg := &database.DBConfig{
		Host:     getEnv("PG_HOST", "localhost"),
		Port:     getEnvInt("PG_PORT", 5432),
		Username: getEnv("PG_USERNAME", "postgres"),
		Password: getEnv("PG_PASSWORD", ""),
		DBName:   getEnv("PG_DBNAME", "portfolio"),

		MaxConns:          int32(getEnvInt("PG_MAX_CONNS", 25)),
		MinConns:          int32(getEnvInt("PG_MIN_CONNS", 5)),
		MaxConnLifetime:   time.Duration(getEnvInt("PG_MAX_CONN_LIFETIME_MIN", 60)) * time.Minute,
		MaxConnIdleTime:   time.Duration(getEnvInt("PG_MAX_CONN_IDLE_MIN", 10)) * time.Minute,
		HealthCheckPeriod: time.Duration(getEnvInt("PG_HEALTH_CHECK_SEC", 60)) * time.Second,

		MaxRetries:     getEnvInt("PG_MAX_RETRIES", 4),
		RetryDelay:     time.Duration(getEnvInt("PG_RETRY_DELAY_SEC", 1)) * time.Second,
		ConnectTimeout: time.Duration(getEnvInt("PG_CONNECT_TIMEOUT_SEC", 10)) * time.Second,
	}

	return cfg, nil
}
