package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port     string
	LogLevel slog.Level

	// Database
	DBDriver    string // postgres or sqlite
	DatabaseURL string
	SQLitePath  string
	AutoMigrate bool

	// Staff authentication
	JWTSecret      string
	JWTExpiry      time.Duration
	JWTIssuer      string
	AdminEmail     string
	AdminPassword  string
	LoginRateLimit int // requests per minute per IP
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load reads configuration from the environment, with a .env file applied first if present.
func Load() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "pos")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("SQLITE_PATH", "pos.db")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("JWT_SECRET", "change-me-in-production")
	v.SetDefault("JWT_EXPIRY", "24h")
	v.SetDefault("JWT_ISSUER", "go-pos-ledger")
	v.SetDefault("ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		DBDriver:       strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		AutoMigrate:    v.GetBool("AUTO_MIGRATE"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		AdminEmail:     v.GetString("ADMIN_EMAIL"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		LoginRateLimit: v.GetInt("LOGIN_RATE_LIMIT"),
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.DBDriver == DriverPostgres && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
			v.GetString("DB_HOST"),
			v.GetString("DB_USER"),
			v.GetString("DB_PASSWORD"),
			v.GetString("DB_NAME"),
			v.GetString("DB_PORT"),
			v.GetString("DB_TIMEZONE"),
		)
	}

	expiry, err := time.ParseDuration(v.GetString("JWT_EXPIRY"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY: %w", err)
	}
	cfg.JWTExpiry = expiry

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.JWTSecret == "change-me-in-production" {
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	return cfg, nil
}
