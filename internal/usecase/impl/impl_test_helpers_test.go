package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"library/config"
	"library/internal/domain/entity"
	"library/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Key:                "test_signing_key_long_enough_for_hs256",
			Issuer:             "library-api",
			Audience:           "library-client",
			AccessTokenMinutes: 5,
			RefreshTokenHours:  24,
			LoginProvider:      "LibraryApi",
			RefreshTokenName:   "RefreshToken",
		},
		Auth:   &config.AuthConfig{BcryptCost: 4},
		Borrow: &config.BorrowConfig{BookHours: 48},
	}
}

// --- In-memory fakes ---
// These back the service tests with real storage semantics (unique email,
// one refresh row per triple) without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.users[id]; ok {
		copied := *user

		return &copied, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.New()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) AddClaim(_ context.Context, userID uuid.UUID, claim entity.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Claims = append(user.Claims, claim)

	return nil
}

type refreshKey struct {
	userID        uuid.UUID
	loginProvider string
	tokenName     string
}

type fakeRefreshRepo struct {
	mu       sync.Mutex
	rows     map[refreshKey]*entity.RefreshToken
	userRepo *fakeUserRepo
}

func newFakeRefreshRepo(userRepo *fakeUserRepo) *fakeRefreshRepo {
	return &fakeRefreshRepo{
		rows:     make(map[refreshKey]*entity.RefreshToken),
		userRepo: userRepo,
	}
}

func (r *fakeRefreshRepo) FindByValue(_ context.Context, value string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.Value == value {
			copied := *row

			return &copied, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *fakeRefreshRepo) FindUserByValue(ctx context.Context, value string) (*entity.User, error) {
	token, err := r.FindByValue(ctx, value)
	if err != nil {
		return nil, err
	}

	return r.userRepo.FindByID(ctx, token.UserID)
}

func (r *fakeRefreshRepo) FindByOwner(_ context.Context, userID uuid.UUID, loginProvider, tokenName string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if row, ok := r.rows[refreshKey{userID, loginProvider, tokenName}]; ok {
		copied := *row

		return &copied, nil
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *fakeRefreshRepo) Rotate(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *token
	r.rows[refreshKey{token.UserID, token.LoginProvider, token.TokenName}] = &copied

	return nil
}

func (r *fakeRefreshRepo) rowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.rows)
}

// fakeTxManager runs the callback directly against a fixed repository set.
type fakeTxManager struct {
	factory *fakeRepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeRepositoryFactory struct {
	userRepo     repository.UserRepository
	refreshRepo  repository.RefreshTokenRepository
	authorRepo   repository.AuthorRepository
	bookRepo     repository.BookRepository
	userBookRepo repository.UserBookRepository
}

func (f *fakeRepositoryFactory) UserRepo() repository.UserRepository { return f.userRepo }

func (f *fakeRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.refreshRepo
}

func (f *fakeRepositoryFactory) AuthorRepo() repository.AuthorRepository { return f.authorRepo }

func (f *fakeRepositoryFactory) BookRepo() repository.BookRepository { return f.bookRepo }

func (f *fakeRepositoryFactory) UserBookRepo() repository.UserBookRepository {
	return f.userBookRepo
}
