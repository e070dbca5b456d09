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

// authorRepository implements the domain.AuthorRepository interface using GORM.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

// FindByID retrieves a single author by ID.
func (repo *authorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	var authorM model.AuthorModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&authorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by id")
	}

	return toAuthorDomain(&authorM), nil
}

// FindPage retrieves one page of authors ordered by name, plus the total count.
func (repo *authorRepository) FindPage(ctx context.Context, page, pageSize int) ([]*entity.Author, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.AuthorModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count authors")
	}

	var authorModels []*model.AuthorModel
	err := repo.db.WithContext(ctx).
		Order("name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&authorModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list authors")
	}

	authors := make([]*entity.Author, 0, len(authorModels))
	for _, authorM := range authorModels {
		authors = append(authors, toAuthorDomain(authorM))
	}

	return authors, total, nil
}

// Create persists a new author.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required author information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	author.ID = authorM.ID
	author.CreatedAt = authorM.CreatedAt
	author.UpdatedAt = authorM.UpdatedAt

	return nil
}

// Update modifies an existing author.
func (repo *authorRepository) Update(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)

	result := repo.db.WithContext(ctx).
		Model(&model.AuthorModel{}).
		Where("id = ?", author.ID).
		Updates(map[string]any{
			"name":          authorM.Name,
			"country":       authorM.Country,
			"date_of_birth": authorM.DateOfBirth,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update author")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// Delete removes an author by ID.
func (repo *authorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthorModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("author still has books")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete author")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAuthorDomain converts a GORM AuthorModel to a domain Author entity.
func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	if data == nil {
		return nil
	}

	return &entity.Author{
		ID:          data.ID,
		Name:        data.Name,
		Country:     data.Country,
		DateOfBirth: data.DateOfBirth,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAuthorDomain converts a domain Author entity to a GORM AuthorModel.
func fromAuthorDomain(data *entity.Author) *model.AuthorModel {
	if data == nil {
		return nil
	}

	return &model.AuthorModel{
		ID:          data.ID,
		Name:        data.Name,
		Country:     data.Country,
		DateOfBirth: data.DateOfBirth,
	}
}
