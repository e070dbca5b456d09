package usecase

import (
	"context"
	"time"

	"library/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthorInput defines the data required to create or update an author.
type AuthorInput struct {
	Name        string    `validate:"required,max=255"`
	Country     string    `validate:"max=100"`
	DateOfBirth time.Time `validate:"required"`
}

// PageInput selects one page of a listing. Zero values take the defaults
// (page 1, size 10); out-of-range values are a validation error.
type PageInput struct {
	Page     int
	PageSize int
}

// AuthorListOutput is one page of authors plus the total count.
type AuthorListOutput struct {
	Authors  []*entity.Author
	Total    int64
	Page     int
	PageSize int
}

// AuthorUsecase defines the interface for author catalog operations.
type AuthorUsecase interface {
	Create(ctx context.Context, input AuthorInput) (*entity.Author, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	List(ctx context.Context, page PageInput) (*AuthorListOutput, error)
	Update(ctx context.Context, id uuid.UUID, input AuthorInput) (*entity.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListBooks returns every book written by the given author.
	ListBooks(ctx context.Context, id uuid.UUID) ([]*entity.Book, error)
}
