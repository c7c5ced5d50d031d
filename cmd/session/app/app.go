package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"user-session/internal/config"
	"user-session/internal/usecase/usersession"
	apperrors "user-session/pkg/errors"
	"user-session/pkg/logger"
)

// App represents the application
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Sessions usersession.Usecase
}

// New creates a new application instance
func New() (*App, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := initLogger(cfg)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to initialize logger", err)
	}

	return NewWithDeps(cfg, l), nil
}

// NewWithDeps assembles an App from already built dependencies.
func NewWithDeps(cfg *config.Config, l *zap.Logger) *App {
	return &App{
		Config:   cfg,
		Logger:   l,
		Sessions: usersession.New(l),
	}
}

// Run opens a session for the configured profile and logs its values.
func (a *App) Run(ctx context.Context) error {
	defer a.syncLogger()

	ctx = context.WithValue(ctx, logger.RequestIDKey, logger.NewRequestID())

	birth, err := a.Config.Profile.BirthDate()
	if err != nil {
		return err
	}

	a.Logger.Info("starting application",
		zap.String("service", a.Config.Logger.ServiceName),
		zap.String("version", a.Config.Logger.ServiceVersion),
		zap.String("environment", a.Config.App.Env),
	)

	p := a.Config.Profile
	s := a.Sessions.Start(ctx, usersession.StartRequest{
		FirstName: p.FirstName,
		FullName:  p.FullName,
		Username:  p.Username,
		Email:     p.Email,
		DateBirth: birth,
	})

	ctx = context.WithValue(ctx, logger.UsernameKey, s.Username())
	snap := a.Sessions.Snapshot(s)
	logger.WithContext(ctx, a.Logger).Info("active session",
		zap.String("first_name", snap.FirstName),
		zap.String("full_name", snap.FullName),
		zap.String("email", snap.Email),
		zap.Time("date_birth", snap.DateBirth),
	)

	return nil
}

func (a *App) syncLogger() {
	if err := a.Logger.Sync(); err != nil {
		// Ignore sync errors for stdout/stderr
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			a.Logger.Error("failed to sync logger", zap.Error(err))
		}
	}
}

// initLogger initializes the application logger
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewWithConfig(logger.Config{
		Level:          cfg.Logger.Level,
		Format:         cfg.Logger.Format,
		OutputPath:     cfg.Logger.OutputPath,
		EnableSampling: cfg.Logger.EnableSampling,
		ServiceName:    cfg.Logger.ServiceName,
		ServiceVersion: cfg.Logger.ServiceVersion,
		Environment:    cfg.App.Env,
	})
}

// getConfigPath returns the configuration path
func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "."
}
