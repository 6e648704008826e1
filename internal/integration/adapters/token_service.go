// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-ai/backend/internal/application/adapter"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

// defaultAccessTokenDuration bounds how long an issued token stays valid.
const defaultAccessTokenDuration = 24 * time.Hour

// tokenIssuer identifies tokens issued by this service.
const tokenIssuer = "finance-ai"

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret        []byte
	tokenDuration time.Duration
}

// NewTokenService creates a new token service instance. A non-positive
// duration falls back to the default.
func NewTokenService(secret string, tokenDuration time.Duration) adapter.TokenService {
	if tokenDuration <= 0 {
		tokenDuration = defaultAccessTokenDuration
	}
	return &tokenService{
		secret:        []byte(secret),
		tokenDuration: tokenDuration,
	}
}

// GenerateAccessToken generates a new signed access token for a user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %w", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
