// Package main is the entrypoint for the users API server.
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/sectionconnection/users-api/internal/config"
	"github.com/sectionconnection/users-api/internal/handler"
	"github.com/sectionconnection/users-api/internal/metrics"
	"github.com/sectionconnection/users-api/internal/middleware"
	"github.com/sectionconnection/users-api/internal/repository"
	"github.com/sectionconnection/users-api/internal/server"
	"github.com/sectionconnection/users-api/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	dsn := cfg.DatabaseDSN()
	repo, err := repository.New(ctx, dsn, repository.PoolConfig{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	})
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, dsn, cfg.DBPassword)),
			slog.String("database_url", redactURL(dsn)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	var (
		recorder       metrics.Recorder = metrics.NewNoop()
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		prom := metrics.NewPrometheus()
		recorder = prom
		metricsHandler = prom.Handler()
	}

	userService := service.NewUserService(repo, recorder)

	r := handler.NewRouter(handler.RouterConfig{
		Logger:         logger,
		Users:          handler.NewUserHandler(userService, logger),
		Health:         handler.NewHealthHandler(repo, logger),
		Recorder:       recorder,
		Store:          repo,
		MetricsHandler: metricsHandler,
		UsersPath:      cfg.UsersPath,
		Security: middleware.SecurityConfig{
			IsDevelopment:      cfg.IsDevelopment(),
			MaxRequestBodySize: cfg.MaxRequestBodySize,
		},
	})

	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("database", func(ctx context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"users_path", cfg.UsersPath,
		"env", cfg.AppEnv,
		"metrics", cfg.MetricsEnabled,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger builds the process logger on stdout and makes it the slog default.
func initLogger(cfg *config.Config) *slog.Logger {
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// newLogger selects the handler from LOG_FORMAT and LOG_LEVEL.
// Production always logs JSON.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" || cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

// redactURL strips the password from a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError removes secrets from an error message before it is logged.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		msg = strings.ReplaceAll(msg, secret, "[redacted]")
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
