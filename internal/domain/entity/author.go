package entity

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a book author in the catalog.
type Author struct {
	ID          uuid.UUID
	Name        string
	Country     string
	DateOfBirth time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
