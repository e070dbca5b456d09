// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"time"

	"library/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims is the claim set carried by access tokens.
type AccessClaims struct {
	UserID   uuid.UUID
	UserName string
	Claims   []entity.Claim
	jwt.RegisteredClaims
}

// TokenService generates and validates credentials. It holds no mutable
// state beyond configuration (signing secret, issuer/audience, lifetimes)
// and consults the refresh token store for liveness/ownership checks.
type TokenService interface {
	// GenerateAccessToken mints a signed, short-lived access token carrying
	// the user's id, display name and stored claims.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateAccessToken verifies signature, issuer, audience and expiry,
	// returning the embedded claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)

	// GenerateRefreshTokenValue returns a fresh opaque refresh token value.
	// The generator carries the entire collision-avoidance burden; the store
	// does not enforce uniqueness of values.
	GenerateRefreshTokenValue() string

	// IsRefreshTokenLive reports whether a refresh token with the given value
	// exists and has not expired. Read-only.
	IsRefreshTokenLive(ctx context.Context, value string) (bool, error)

	// VerifyUserToken reports whether the presented value matches the refresh
	// token currently stored for (user, provider, name).
	VerifyUserToken(ctx context.Context, userID uuid.UUID, value, loginProvider, tokenName string) (bool, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
