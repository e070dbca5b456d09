package postgres

import (
	"context"
	"time"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// refreshTokenRepository implements the domain.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// FindByValue retrieves a refresh token record by its opaque value.
func (repo *refreshTokenRepository) FindByValue(ctx context.Context, value string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel

	err := repo.db.WithContext(ctx).
		Where("value = ?", value).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// FindUserByValue resolves the user (with claims) owning the refresh token
// with the given value.
func (repo *refreshTokenRepository) FindUserByValue(ctx context.Context, value string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Claims").
		Joins("JOIN refresh_tokens ON refresh_tokens.user_id = users.id").
		Where("refresh_tokens.value = ?", value).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(&userM), nil
}

// FindByOwner retrieves the refresh token stored for a (user, provider, name) triple.
func (repo *refreshTokenRepository) FindByOwner(ctx context.Context, userID uuid.UUID, loginProvider, tokenName string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND login_provider = ? AND token_name = ?", userID, loginProvider, tokenName).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRefreshTokenDomain(&tokenM), nil
}

// Rotate atomically replaces any existing row for the token's
// (user, provider, name) triple. A single upsert keyed on the composite
// primary key serializes concurrent rotations; exactly one row survives.
func (repo *refreshTokenRepository) Rotate(ctx context.Context, token *entity.RefreshToken) error {
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	tokenM := fromRefreshTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "login_provider"},
				{Name: "token_name"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "created_at", "expires_at"}),
		}).
		Create(tokenM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to rotate refresh token")
	}

	return nil
}

// --- Mapper Functions ---

// toRefreshTokenDomain converts a GORM RefreshTokenModel to a domain RefreshToken entity.
func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		UserID:        data.UserID,
		LoginProvider: data.LoginProvider,
		TokenName:     data.TokenName,
		Value:         data.Value,
		CreatedAt:     data.CreatedAt,
		ExpiresAt:     data.ExpiresAt,
	}
}

// fromRefreshTokenDomain converts a domain RefreshToken entity to a GORM RefreshTokenModel.
func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		UserID:        data.UserID,
		LoginProvider: data.LoginProvider,
		TokenName:     data.TokenName,
		Value:         data.Value,
		CreatedAt:     data.CreatedAt,
		ExpiresAt:     data.ExpiresAt,
	}
}
