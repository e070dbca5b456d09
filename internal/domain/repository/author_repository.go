package repository

import (
	"context"
	"errors"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthorNotFound is returned when an author is not found.
var ErrAuthorNotFound = errors.New("author not found")

// AuthorRepository defines the standard operations for author persistence.
type AuthorRepository interface {
	// FindByID retrieves a single author by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error)

	// FindPage retrieves one page of authors ordered by name, plus the total count.
	FindPage(ctx context.Context, page, pageSize int) ([]*entity.Author, int64, error)

	// Create persists a new author.
	Create(ctx context.Context, author *entity.Author) error

	// Update modifies an existing author.
	Update(ctx context.Context, author *entity.Author) error

	// Delete removes an author by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
