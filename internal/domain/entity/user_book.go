package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserBook is a borrowing record linking a user to a book they currently hold.
type UserBook struct {
	UserID     uuid.UUID
	BookID     uuid.UUID
	Book       *Book
	TakenDate  time.Time
	ReturnDate time.Time
}
