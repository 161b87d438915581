// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL). DatabaseURL wins over the discrete fields when set.
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      int    `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME" envDefault:"section_connection"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"2"`

	// Route serving the users resource
	UsersPath string `env:"USERS_PATH" envDefault:"/"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	// Expose /metrics
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DatabaseDSN returns DatabaseURL, or a postgres:// URL assembled from the discrete fields.
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.DBSSLMode}}.Encode()
	}

	return u.String()
}

// Validate checks combinations the env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" && c.DBUser == "" {
		errs = append(errs, errors.New("either DATABASE_URL or DB_USER must be set"))
	}
	if c.AppPort <= 0 || c.AppPort > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT out of range: %d", c.AppPort))
	}
	if !strings.HasPrefix(c.UsersPath, "/") {
		errs = append(errs, fmt.Errorf("USERS_PATH must start with '/': %q", c.UsersPath))
	}
	if c.DBMinConns > c.DBMaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns))
	}

	return errors.Join(errs...)
}

// Load reads an optional .env file, parses environment variables and validates the result.
// Variables already present in the environment take precedence over .env entries.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
