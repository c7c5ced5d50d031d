package usersession

import (
	"context"

	domain "user-session/internal/domain/usersession"
)

// Usecase defines the operations on the signed-in user's session.
type Usecase interface {
	Start(ctx context.Context, in StartRequest) *domain.UserSession
	Update(ctx context.Context, s *domain.UserSession, in UpdateRequest) *domain.UserSession
	Snapshot(s *domain.UserSession) Profile
}
