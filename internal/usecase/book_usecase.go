package usecase

import (
	"context"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// BookInput defines the data required to create or update a book.
type BookInput struct {
	Isbn        string    `validate:"required,isbn"`
	Title       string    `validate:"required,max=255"`
	Genre       string    `validate:"max=100"`
	Description string    `validate:"max=2000"`
	AuthorID    uuid.UUID `validate:"required"`
}

// BookListInput selects one page of books, optionally narrowed by genre or
// author name.
type BookListInput struct {
	Page       PageInput
	Genre      string
	AuthorName string
}

// BookListOutput is one page of books plus the total count.
type BookListOutput struct {
	Books    []*entity.Book
	Total    int64
	Page     int
	PageSize int
}

// BookUsecase defines the interface for book catalog operations.
type BookUsecase interface {
	Create(ctx context.Context, input BookInput) (*entity.Book, error)

	// Get resolves a book by UUID or, failing that, by ISBN.
	Get(ctx context.Context, idOrIsbn string) (*entity.Book, error)

	List(ctx context.Context, input BookListInput) (*BookListOutput, error)
	Update(ctx context.Context, id uuid.UUID, input BookInput) (*entity.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
