package postgres

import (
	"context"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the domain.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// FindByID retrieves a single book (with author) by ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// FindByIsbn retrieves a single book (with author) by ISBN.
func (repo *bookRepository) FindByIsbn(ctx context.Context, isbn string) (*entity.Book, error) {
	var bookM model.BookModel

	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("isbn = ?", isbn).
		First(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by isbn")
	}

	return toBookDomain(&bookM), nil
}

// FindPage retrieves one page of books matching the filter, plus the total count.
func (repo *bookRepository) FindPage(ctx context.Context, filter repository.BookFilter, page, pageSize int) ([]*entity.Book, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BookModel{})
	if filter.Genre != "" {
		query = query.Where("books.genre = ?", filter.Genre)
	}
	if filter.AuthorName != "" {
		query = query.
			Joins("JOIN authors ON authors.id = books.author_id").
			Where("authors.name ILIKE ?", "%"+filter.AuthorName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count books")
	}

	var bookModels []*model.BookModel
	err := query.
		Preload("Author").
		Order("books.title").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, total, nil
}

// FindByAuthorID retrieves all books written by the given author.
func (repo *bookRepository) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("title").
		Find(&bookModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list books by author")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookM := range bookModels {
		books = append(books, toBookDomain(bookM))
	}

	return books, nil
}

// Create persists a new book.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("isbn already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAuthorNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update modifies an existing book.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"isbn":        bookM.Isbn,
			"title":       bookM.Title,
			"genre":       bookM.Genre,
			"description": bookM.Description,
			"author_id":   bookM.AuthorID,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("isbn already exists")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrAuthorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a book by ID.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("book is currently borrowed")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:          data.ID,
		Isbn:        data.Isbn,
		Title:       data.Title,
		Genre:       data.Genre,
		Description: data.Description,
		AuthorID:    data.AuthorID,
		Author:      toAuthorDomain(data.Author),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:          data.ID,
		Isbn:        data.Isbn,
		Title:       data.Title,
		Genre:       data.Genre,
		Description: data.Description,
		AuthorID:    data.AuthorID,
	}
}
