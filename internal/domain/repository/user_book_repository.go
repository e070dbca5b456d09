package repository

import (
	"context"
	"errors"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserBookNotFound is returned when a borrowing record is not found.
var ErrUserBookNotFound = errors.New("borrow record not found")

// UserBookRepository defines the standard operations for borrowing records.
type UserBookRepository interface {
	// Find retrieves the borrowing record for a (user, book) pair.
	Find(ctx context.Context, userID, bookID uuid.UUID) (*entity.UserBook, error)

	// FindBorrowedPage retrieves one page of a user's borrowed books (with book
	// and author preloaded), plus the total count.
	FindBorrowedPage(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.UserBook, int64, error)

	// Create persists a new borrowing record.
	Create(ctx context.Context, record *entity.UserBook) error

	// Delete removes the borrowing record for a (user, book) pair.
	Delete(ctx context.Context, userID, bookID uuid.UUID) error
}
