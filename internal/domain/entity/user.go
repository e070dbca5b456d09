// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Claim types understood by the authentication core.
const (
	ClaimTypeEmail = "email"
	ClaimTypeRole  = "role"
)

// Role claim values used to gate catalog write operations.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
)

// User is the core identity in the system. The authentication core reads its
// identifier, display name and claim set; credential material lives in a
// separate column managed by the user repository.
type User struct {
	ID           uuid.UUID // The unique identifier for the user account.
	Email        string    // The user's login identifier.
	UserName     string    // The user's display name, embedded in access tokens.
	PasswordHash string    // Stores the bcrypt-hashed password.
	Claims       []Claim   // Externally-assigned claims carried into access tokens.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Claim is a single (type, value) pair attached to a user, e.g. ("role", "Admin").
type Claim struct {
	Type  string
	Value string
}

// HasClaim reports whether the user carries the given claim pair.
func (u *User) HasClaim(claimType, claimValue string) bool {
	for _, c := range u.Claims {
		if c.Type == claimType && c.Value == claimValue {
			return true
		}
	}

	return false
}
