package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a single catalog entry. Author is loaded eagerly because
// book responses always include the author's name.
type Book struct {
	ID          uuid.UUID
	Isbn        string
	Title       string
	Genre       string
	Description string
	AuthorID    uuid.UUID
	Author      *Author
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
