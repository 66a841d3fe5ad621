package shared

import (
	"context"

	appErrors "FinMate/internal/errors"

	"github.com/oklog/ulid/v2"
)

type UserCheckerService struct {
	userService UserGetter
}

func NewUserCheckerService(userService UserGetter) *UserCheckerService {
	return &UserCheckerService{userService: userService}
}

func (s *UserCheckerService) EnsureUserExists(ctx context.Context, userID ulid.ULID) error {
	if s.userService == nil {
		return appErrors.ErrInternalServer
	}

	if err := s.userService.Exists(ctx, userID); err != nil {
		return appErrors.ErrUserNotFound.WithError(err)
	}

	return nil
}

// Exists permite usar o checker onde um UserGetter e esperado.
func (s *UserCheckerService) Exists(ctx context.Context, userID ulid.ULID) error {
	return s.EnsureUserExists(ctx, userID)
}
