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

// userBookRepository implements the domain.UserBookRepository interface using GORM.
type userBookRepository struct {
	db *gorm.DB
}

// NewUserBookRepository is the constructor for userBookRepository.
func NewUserBookRepository(db *gorm.DB) repository.UserBookRepository {
	return &userBookRepository{db: db}
}

// Find retrieves the borrowing record for a (user, book) pair.
func (repo *userBookRepository) Find(ctx context.Context, userID, bookID uuid.UUID) (*entity.UserBook, error) {
	var recordM model.UserBookModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&recordM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find borrow record")
	}

	return toUserBookDomain(&recordM), nil
}

// FindBorrowedPage retrieves one page of a user's borrowed books, with book
// and author preloaded, plus the total count.
func (repo *userBookRepository) FindBorrowedPage(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.UserBook, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserBookModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count borrowed books")
	}

	var recordModels []*model.UserBookModel
	err = repo.db.WithContext(ctx).
		Preload("Book.Author").
		Where("user_id = ?", userID).
		Order("taken_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&recordModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list borrowed books")
	}

	records := make([]*entity.UserBook, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toUserBookDomain(recordM))
	}

	return records, total, nil
}

// Create persists a new borrowing record.
func (repo *userBookRepository) Create(ctx context.Context, record *entity.UserBook) error {
	recordM := fromUserBookDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBookAlreadyBorrowed
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBookNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create borrow record")
	}

	return nil
}

// Delete removes the borrowing record for a (user, book) pair.
func (repo *userBookRepository) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&model.UserBookModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete borrow record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserBookNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserBookDomain converts a GORM UserBookModel to a domain UserBook entity.
func toUserBookDomain(data *model.UserBookModel) *entity.UserBook {
	if data == nil {
		return nil
	}

	return &entity.UserBook{
		UserID:     data.UserID,
		BookID:     data.BookID,
		Book:       toBookDomain(data.Book),
		TakenDate:  data.TakenDate,
		ReturnDate: data.ReturnDate,
	}
}

// fromUserBookDomain converts a domain UserBook entity to a GORM UserBookModel.
func fromUserBookDomain(data *entity.UserBook) *model.UserBookModel {
	if data == nil {
		return nil
	}

	return &model.UserBookModel{
		UserID:     data.UserID,
		BookID:     data.BookID,
		TakenDate:  data.TakenDate,
		ReturnDate: data.ReturnDate,
	}
}
