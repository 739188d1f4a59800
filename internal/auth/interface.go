package auth

import (
	"context"

	"github.com/Kenyi45/task-manager/internal/model"
)

// UseCase defines the authentication business logic.
type UseCase interface {
	// Login verifies credentials and issues a fresh access/refresh pair.
	Login(ctx context.Context, input LoginInput) (model.TokenPair, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
