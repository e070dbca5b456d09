package impl

import (
	"context"
	"log/slog"

	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authorService implements the AuthorUsecase interface.
type authorService struct {
	authorRepo repository.AuthorRepository
	bookRepo   repository.BookRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// AuthorServiceParams holds dependencies for authorService, injected by Fx.
type AuthorServiceParams struct {
	fx.In

	AuthorRepo repository.AuthorRepository
	BookRepo   repository.BookRepository
	Logger     *slog.Logger
}

// NewAuthorService is the constructor for authorService.
func NewAuthorService(params AuthorServiceParams) usecase.AuthorUsecase {
	return &authorService{
		authorRepo: params.AuthorRepo,
		bookRepo:   params.BookRepo,
		validate:   newInputValidator(),
		logger:     params.Logger,
	}
}

func (srv *authorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new author.
func (srv *authorService) Create(ctx context.Context, input usecase.AuthorInput) (*entity.Author, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	author := &entity.Author{
		Name:        input.Name,
		Country:     input.Country,
		DateOfBirth: input.DateOfBirth,
	}
	if err := srv.authorRepo.Create(ctx, author); err != nil {
		srv.log(ctx).Error("Failed to create author", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create author")
	}

	srv.log(ctx).Info("Author created", slog.Any("authorID", author.ID))

	return author, nil
}

// Get retrieves a single author by ID.
func (srv *authorService) Get(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	author, err := srv.authorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to get author")
	}

	return author, nil
}

// List returns one page of authors ordered by name.
func (srv *authorService) List(ctx context.Context, page usecase.PageInput) (*usecase.AuthorListOutput, error) {
	pageNum, pageSize, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	authors, total, err := srv.authorRepo.FindPage(ctx, pageNum, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	return &usecase.AuthorListOutput{
		Authors:  authors,
		Total:    total,
		Page:     pageNum,
		PageSize: pageSize,
	}, nil
}

// Update modifies an existing author.
func (srv *authorService) Update(ctx context.Context, id uuid.UUID, input usecase.AuthorInput) (*entity.Author, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	author := &entity.Author{
		ID:          id,
		Name:        input.Name,
		Country:     input.Country,
		DateOfBirth: input.DateOfBirth,
	}
	if err := srv.authorRepo.Update(ctx, author); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to update author")
	}

	return srv.Get(ctx, id)
}

// Delete removes an author by ID.
func (srv *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.authorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return domainerrors.ErrAuthorNotFound
		}

		srv.log(ctx).Error("Failed to delete author", slog.Any("authorID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete author")
	}

	srv.log(ctx).Info("Author deleted", slog.Any("authorID", id))

	return nil
}

// ListBooks returns every book written by the given author.
func (srv *authorService) ListBooks(ctx context.Context, id uuid.UUID) ([]*entity.Book, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	books, err := srv.bookRepo.FindByAuthorID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list author books")
	}

	return books, nil
}
