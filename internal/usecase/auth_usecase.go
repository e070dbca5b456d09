// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `validate:"required,email"`
	UserName string `validate:"required,min=6,max=50,username_chars"`
	Password string `validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// --- Output DTOs ---

// TokenPairOutput carries a freshly issued access/refresh credential pair.
// RefreshToken is always the value just stored for the user's session row.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new user account and issues a token pair.
	Register(ctx context.Context, input RegisterInput) (*TokenPairOutput, error)

	// Login verifies credentials and issues a token pair. Unknown email and
	// wrong password yield the same invalid-credentials outcome.
	Login(ctx context.Context, input LoginInput) (*TokenPairOutput, error)

	// Refresh exchanges a live refresh token value for a new pair, rotating
	// the stored session row.
	Refresh(ctx context.Context, refreshToken string) (*TokenPairOutput, error)
}
