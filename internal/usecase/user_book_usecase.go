package usecase

import (
	"context"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// BorrowedListOutput is one page of a user's borrowing records plus the total count.
type BorrowedListOutput struct {
	Records  []*entity.UserBook
	Total    int64
	Page     int
	PageSize int
}

// UserBookUsecase defines the interface for borrowing operations.
type UserBookUsecase interface {
	// ListBorrowed returns one page of the books the user currently holds.
	ListBorrowed(ctx context.Context, userID uuid.UUID, page PageInput) (*BorrowedListOutput, error)

	// Borrow creates a borrowing record with a loan period from config.
	// A book already held by the user cannot be borrowed again.
	Borrow(ctx context.Context, userID, bookID uuid.UUID) (*entity.UserBook, error)

	// Return removes the user's borrowing record for the book.
	Return(ctx context.Context, userID, bookID uuid.UUID) error
}
