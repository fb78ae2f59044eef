package config

import (
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP
	HTTPAddr string `conf:"default::8080,env:HTTP_ADDR"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// Session
	SessionAuthKey       string `conf:"default:dev-auth-key-32-bytes-long!!!,env:SESSION_AUTH_KEY"`
	SessionEncryptionKey string `conf:"default:dev-encryption-key-32-bytes!!,env:SESSION_ENCRYPTION_KEY,noprint"`

	// CORS — comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Inventory policy
	LowStockThreshold int `conf:"default:10,env:LOW_STOCK_THRESHOLD"`

	// Analytics windows
	SalesWindowMonths int `conf:"default:6,env:SALES_WINDOW_MONTHS"`
	SalesWindowDays   int `conf:"default:30,env:SALES_WINDOW_DAYS"`

	// Forecasting
	ForecastHorizonDays int `conf:"default:30,env:FORECAST_HORIZON_DAYS"`

	// Observability
	ServiceName    string `conf:"default:inventory-dashboard,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"default:,env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"default:,env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.LowStockThreshold < 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD must be non-negative, got %d", cfg.LowStockThreshold)
	}
	if cfg.ForecastHorizonDays < 1 {
		return nil, fmt.Errorf("FORECAST_HORIZON_DAYS must be at least 1, got %d", cfg.ForecastHorizonDays)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if len(cfg.SessionAuthKey) < 32 {
		errs = append(errs, fmt.Sprintf(
			"SESSION_AUTH_KEY must be at least 32 bytes (got %d); generate with: openssl rand -base64 32",
			len(cfg.SessionAuthKey),
		))
	}

	if len(cfg.SessionEncryptionKey) < 16 {
		errs = append(errs, fmt.Sprintf(
			"SESSION_ENCRYPTION_KEY must be at least 16 bytes (got %d); generate with: openssl rand -base64 16",
			len(cfg.SessionEncryptionKey),
		))
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
