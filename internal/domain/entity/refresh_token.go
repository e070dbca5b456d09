package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session. It is
// exchanged for a new access/refresh pair after the access token expires.
// At most one row exists per (UserID, LoginProvider, TokenName) triple; a
// successful refresh atomically replaces the previous row ("rotation").
type RefreshToken struct {
	UserID        uuid.UUID // Links this session to the User it belongs to.
	LoginProvider string    // Issuance context, e.g. "LibraryApi".
	TokenName     string    // Purpose within the provider, e.g. "RefreshToken".
	Value         string    // The opaque token string; sole lookup key for validation.
	CreatedAt     time.Time // When this session was created or last rotated.
	ExpiresAt     time.Time // The exact time this refresh token becomes invalid.
}

// Live reports whether the token is still valid at the given instant.
// A token expiring exactly at "now" is no longer live.
func (t *RefreshToken) Live(now time.Time) bool {
	return now.Before(t.ExpiresAt)
}
