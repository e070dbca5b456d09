// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"library/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// RefreshTokenRepository persists one refresh-credential row per
// (user, login provider, token name) key. The opaque value is the sole
// lookup key for validation; the triple is the rotation key.
type RefreshTokenRepository interface {
	// FindByValue retrieves a refresh token record by its opaque value.
	FindByValue(ctx context.Context, value string) (*entity.RefreshToken, error)

	// FindUserByValue resolves the user owning the refresh token with the given value.
	FindUserByValue(ctx context.Context, value string) (*entity.User, error)

	// FindByOwner retrieves the refresh token stored for a (user, provider, name) triple.
	FindByOwner(ctx context.Context, userID uuid.UUID, loginProvider, tokenName string) (*entity.RefreshToken, error)

	// Rotate atomically replaces any existing row for the token's
	// (user, provider, name) triple with the given record. Concurrent
	// rotations for the same triple serialize; exactly one row survives.
	Rotate(ctx context.Context, token *entity.RefreshToken) error
}
