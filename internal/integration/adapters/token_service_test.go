// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	t.Run("round trip preserves claims", func(t *testing.T) {
		token, err := service.GenerateAccessToken(context.Background(), userID, "alice")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		claims, err := service.ValidateAccessToken(context.Background(), token)
		if err != nil {
			t.Fatalf("validate failed: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user id %s, got %s", userID, claims.UserID)
		}
		if claims.Username != "alice" {
			t.Errorf("expected username alice, got %q", claims.Username)
		}
		if remaining := time.Until(claims.ExpiresAt); remaining <= 0 || remaining > time.Hour {
			t.Errorf("unexpected expiry window: %s", remaining)
		}
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		other := NewTokenService("another-secret", time.Hour)
		token, err := other.GenerateAccessToken(context.Background(), userID, "alice")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		if _, err := service.ValidateAccessToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(context.Background(), "not.a.token"); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token is reported as expired", func(t *testing.T) {
		shortLived := NewTokenService("test-secret", time.Millisecond)
		token, err := shortLived.GenerateAccessToken(context.Background(), userID, "alice")
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		time.Sleep(5 * time.Millisecond)

		if _, err := service.ValidateAccessToken(context.Background(), token); !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})
}

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := service.HashPassword("correct horse battery")
		if err != nil {
			t.Fatalf("hash failed: %v", err)
		}
		if hash == "correct horse battery" {
			t.Fatal("password must not be stored in plain text")
		}
		if err := service.VerifyPassword(hash, "correct horse battery"); err != nil {
			t.Errorf("verification failed: %v", err)
		}
		if err := service.VerifyPassword(hash, "wrong password"); err == nil {
			t.Error("wrong password must not verify")
		}
	})

	t.Run("strength check enforces minimum length", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected short password to be rejected")
		}
		if err := service.ValidatePasswordStrength("exactly8"); err != nil {
			t.Errorf("expected 8-character password to pass, got %v", err)
		}
	})
}
