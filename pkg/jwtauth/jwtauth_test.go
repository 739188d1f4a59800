package jwtauth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Kenyi45/task-manager/pkg/jwtauth"
)

func TestGeneratePair(t *testing.T) {
	m := jwtauth.New("test-secret", 30*time.Minute, 24*time.Hour)

	pair, err := m.GeneratePair(42, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Access Claims", func(t *testing.T) {
		claims, err := m.ParseAccess(pair.Access)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != 42 || claims.Username != "alice" {
			t.Errorf("unexpected claims: %+v", claims)
		}
		if claims.TokenType != jwtauth.TokenTypeAccess {
			t.Errorf("expected access token type, got %q", claims.TokenType)
		}
	})

	t.Run("Refresh Claims", func(t *testing.T) {
		claims, err := m.ParseRefresh(pair.Refresh)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.TokenType != jwtauth.TokenTypeRefresh {
			t.Errorf("expected refresh token type, got %q", claims.TokenType)
		}
	})

	t.Run("Kind Enforcement", func(t *testing.T) {
		if _, err := m.ParseAccess(pair.Refresh); !errors.Is(err, jwtauth.ErrInvalidToken) {
			t.Errorf("refresh token must not parse as access, got %v", err)
		}
		if _, err := m.ParseRefresh(pair.Access); !errors.Is(err, jwtauth.ErrInvalidToken) {
			t.Errorf("access token must not parse as refresh, got %v", err)
		}
	})
}

func TestParseRejections(t *testing.T) {
	m := jwtauth.New("test-secret", 30*time.Minute, 24*time.Hour)

	t.Run("Expired Token", func(t *testing.T) {
		expired := jwtauth.New("test-secret", -time.Minute, -time.Minute)
		pair, err := expired.GeneratePair(1, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := m.ParseAccess(pair.Access); !errors.Is(err, jwtauth.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := jwtauth.New("other-secret", 30*time.Minute, 24*time.Hour)
		pair, err := other.GeneratePair(1, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := m.ParseAccess(pair.Access); !errors.Is(err, jwtauth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Garbage Input", func(t *testing.T) {
		if _, err := m.ParseAccess("not.a.token"); !errors.Is(err, jwtauth.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
