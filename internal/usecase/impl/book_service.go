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

// bookService implements the BookUsecase interface.
type bookService struct {
	bookRepo   repository.BookRepository
	authorRepo repository.AuthorRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// BookServiceParams holds dependencies for bookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	BookRepo   repository.BookRepository
	AuthorRepo repository.AuthorRepository
	Logger     *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		bookRepo:   params.BookRepo,
		authorRepo: params.AuthorRepo,
		validate:   newInputValidator(),
		logger:     params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new book after checking the author exists.
func (srv *bookService) Create(ctx context.Context, input usecase.BookInput) (*entity.Book, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	if _, err := srv.authorRepo.FindByID(ctx, input.AuthorID); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to check author for new book")
	}

	book := &entity.Book{
		Isbn:        input.Isbn,
		Title:       input.Title,
		Genre:       input.Genre,
		Description: input.Description,
		AuthorID:    input.AuthorID,
	}
	if err := srv.bookRepo.Create(ctx, book); err != nil {
		srv.log(ctx).Error("Failed to create book", slog.String("isbn", input.Isbn), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created", slog.Any("bookID", book.ID))

	return srv.bookRepo.FindByID(ctx, book.ID)
}

// Get resolves a book by UUID or, failing that, by ISBN.
func (srv *bookService) Get(ctx context.Context, idOrIsbn string) (*entity.Book, error) {
	var (
		book *entity.Book
		err  error
	)

	if id, parseErr := uuid.Parse(idOrIsbn); parseErr == nil {
		book, err = srv.bookRepo.FindByID(ctx, id)
	} else {
		book, err = srv.bookRepo.FindByIsbn(ctx, idOrIsbn)
	}

	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, domainerrors.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to get book")
	}

	return book, nil
}

// List returns one page of books matching the optional genre / author-name filters.
func (srv *bookService) List(ctx context.Context, input usecase.BookListInput) (*usecase.BookListOutput, error) {
	pageNum, pageSize, err := normalizePage(input.Page)
	if err != nil {
		return nil, err
	}

	filter := repository.BookFilter{
		Genre:      input.Genre,
		AuthorName: input.AuthorName,
	}
	books, total, err := srv.bookRepo.FindPage(ctx, filter, pageNum, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return &usecase.BookListOutput{
		Books:    books,
		Total:    total,
		Page:     pageNum,
		PageSize: pageSize,
	}, nil
}

// Update modifies an existing book.
func (srv *bookService) Update(ctx context.Context, id uuid.UUID, input usecase.BookInput) (*entity.Book, error) {
	if err := validateInput(srv.validate, input); err != nil {
		return nil, err
	}

	book := &entity.Book{
		ID:          id,
		Isbn:        input.Isbn,
		Title:       input.Title,
		Genre:       input.Genre,
		Description: input.Description,
		AuthorID:    input.AuthorID,
	}
	if err := srv.bookRepo.Update(ctx, book); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookNotFound):
			return nil, domainerrors.ErrBookNotFound
		case errors.Is(err, repository.ErrAuthorNotFound):
			return nil, domainerrors.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to update book")
	}

	return srv.bookRepo.FindByID(ctx, id)
}

// Delete removes a book by ID.
func (srv *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.bookRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return domainerrors.ErrBookNotFound
		}

		srv.log(ctx).Error("Failed to delete book", slog.Any("bookID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete book")
	}

	srv.log(ctx).Info("Book deleted", slog.Any("bookID", id))

	return nil
}
