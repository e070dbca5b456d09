package repository

import (
	"context"
	"errors"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// BookFilter narrows paginated book listings. Zero values mean "no filter".
type BookFilter struct {
	Genre      string
	AuthorName string
}

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	// FindByID retrieves a single book (with author) by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByIsbn retrieves a single book (with author) by ISBN.
	FindByIsbn(ctx context.Context, isbn string) (*entity.Book, error)

	// FindPage retrieves one page of books matching the filter, plus the total count.
	FindPage(ctx context.Context, filter BookFilter, page, pageSize int) ([]*entity.Book, int64, error)

	// FindByAuthorID retrieves all books written by the given author.
	FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entity.Book, error)

	// Create persists a new book.
	Create(ctx context.Context, book *entity.Book) error

	// Update modifies an existing book.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes a book by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
