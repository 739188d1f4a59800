package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Kenyi45/task-manager/internal/auth"
	"github.com/Kenyi45/task-manager/internal/model"
	"github.com/Kenyi45/task-manager/internal/user"
)

// Login verifies credentials and issues a fresh access/refresh pair.
// A new login always replaces the previous pair; nothing is tracked
// server-side.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (model.TokenPair, error) {
	u, err := uc.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return model.TokenPair{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "auth usecase: failed to look up user %q: %v", input.Username, err)
		return model.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return model.TokenPair{}, auth.ErrInvalidCredentials
	}

	pair, err := uc.tokens.GeneratePair(u.ID, u.Username)
	if err != nil {
		uc.l.Errorf(ctx, "auth usecase: failed to generate token pair: %v", err)
		return model.TokenPair{}, err
	}

	uc.l.Infof(ctx, "auth usecase: user %q logged in", u.Username)
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. Refresh
// tokens are stateless: validity is the signature and expiry alone.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := uc.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	// The account may have been removed since the token was minted.
	u, err := uc.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", auth.ErrInvalidToken
		}
		return "", err
	}

	return uc.tokens.GenerateAccess(u.ID, u.Username)
}
