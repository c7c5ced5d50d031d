package usersession

import (
	"context"

	"go.uber.org/zap"

	domain "user-session/internal/domain/usersession"
	"user-session/pkg/logger"
)

// Service implements Usecase. Values pass through unchanged; nothing is validated.
type Service struct {
	log *zap.Logger
}

var _ Usecase = (*Service)(nil)

// New creates a Service. A nil logger disables logging.
func New(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log}
}

// Start builds a new session from the request.
func (uc *Service) Start(ctx context.Context, in StartRequest) *domain.UserSession {
	s := domain.New(in.FirstName, in.FullName, in.Username, in.Email, in.DateBirth)

	logger.WithContext(ctx, uc.log).Info("session started", zap.String("username", s.Username()))
	return s
}

// Update applies the non-nil fields of the request through the session setters
// and returns the same session.
func (uc *Service) Update(ctx context.Context, s *domain.UserSession, in UpdateRequest) *domain.UserSession {
	changed := make([]string, 0, 5)

	if in.FirstName != nil {
		s.SetFirstName(*in.FirstName)
		changed = append(changed, "first_name")
	}
	if in.FullName != nil {
		s.SetFullName(*in.FullName)
		changed = append(changed, "full_name")
	}
	if in.Username != nil {
		s.SetUsername(*in.Username)
		changed = append(changed, "username")
	}
	if in.Email != nil {
		s.SetEmail(*in.Email)
		changed = append(changed, "email")
	}
	if in.DateBirth != nil {
		s.SetDateBirth(*in.DateBirth)
		changed = append(changed, "date_birth")
	}

	log := logger.WithContext(ctx, uc.log)
	if len(changed) == 0 {
		log.Debug("session update skipped, no fields set", zap.String("username", s.Username()))
		return s
	}

	log.Info("session updated",
		zap.String("username", s.Username()),
		zap.Strings("fields", changed),
	)
	return s
}

// Snapshot copies the current values of s.
func (uc *Service) Snapshot(s *domain.UserSession) Profile {
	return Profile{
		FirstName: s.FirstName(),
		FullName:  s.FullName(),
		Username:  s.Username(),
		Email:     s.Email(),
		DateBirth: s.DateBirth(),
	}
}
