package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	ClientURL   string // allowed CORS origin (the portfolio frontend)
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	TokenExpiry int // minutes
}

type EmailConfig struct {
	Enabled   bool
	SMTPHost  string
	SMTPPort  string
	From      string
	To        string // portfolio owner address for contact notifications
	AutoReply bool
}

type RateLimitConfig struct {
	ContactMaxPerHour int // contact form submissions per IP per hour
	LoginMaxPer15Min  int // login attempts per IP per 15 minutes
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Portfolio API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ClientURL:   getEnv("CLIENT_URL", "http://localhost:3000"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			TokenExpiry: getEnvInt("JWT_EXPIRY", 24*60), // 24 hours
		},
		Email: EmailConfig{
			Enabled:   getEnvBool("EMAIL_ENABLED", false),
			SMTPHost:  getEnv("SMTP_HOST", "localhost"),
			SMTPPort:  getEnv("SMTP_PORT", "1025"),
			From:      getEnv("EMAIL_FROM", "noreply@portfolio.dev"),
			To:        getEnv("EMAIL_TO", ""),
			AutoReply: getEnvBool("AUTO_REPLY_ENABLED", true),
		},
		RateLimit: RateLimitConfig{
			ContactMaxPerHour: getEnvInt("CONTACT_RATE_LIMIT", 3),
			LoginMaxPer15Min:  getEnvInt("LOGIN_RATE_LIMIT", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical configuration
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Email.Enabled && c.Email.To == "" {
			return fmt.Errorf("EMAIL_TO must be set when email is enabled")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
