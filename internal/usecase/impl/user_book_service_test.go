package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "library/internal/domain/errors"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type borrowFixture struct {
	*catalogFixture
	userBookService usecase.UserBookUsecase
}

func newBorrowFixture() *borrowFixture {
	catalog := newCatalogFixture()
	userBookRepo := newFakeUserBookRepo(catalog.bookRepo)

	txManager := &fakeTxManager{factory: &fakeRepositoryFactory{
		authorRepo:   catalog.authorRepo,
		bookRepo:     catalog.bookRepo,
		userBookRepo: userBookRepo,
	}}

	return &borrowFixture{
		catalogFixture: catalog,
		userBookService: NewUserBookService(UserBookServiceParams{
			TxManager:    txManager,
			UserBookRepo: userBookRepo,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
	}
}

func TestUserBookService_BorrowAndReturn(t *testing.T) {
	fixture := newBorrowFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, bookID := fixture.seedAuthorAndBook(t, "George Orwell", "1984", "978-0-452-28423-4", "Dystopian")

	record, err := fixture.userBookService.Borrow(ctx, userID, bookID)
	require.NoError(t, err)
	assert.Equal(t, bookID, record.BookID)
	// Loan period comes from config (48 hours in the test config).
	assert.WithinDuration(t, record.TakenDate.Add(48*time.Hour), record.ReturnDate, time.Second)

	require.NoError(t, fixture.userBookService.Return(ctx, userID, bookID))

	err = fixture.userBookService.Return(ctx, userID, bookID)
	assert.True(t, errors.Is(err, domainerrors.ErrBorrowRecordNotFound))
}

func TestUserBookService_Borrow_UnknownBook(t *testing.T) {
	fixture := newBorrowFixture()

	_, err := fixture.userBookService.Borrow(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestUserBookService_Borrow_AlreadyBorrowed(t *testing.T) {
	fixture := newBorrowFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, bookID := fixture.seedAuthorAndBook(t, "George Orwell", "1984", "978-0-452-28423-4", "Dystopian")

	_, err := fixture.userBookService.Borrow(ctx, userID, bookID)
	require.NoError(t, err)

	_, err = fixture.userBookService.Borrow(ctx, userID, bookID)
	assert.True(t, errors.Is(err, domainerrors.ErrBookAlreadyBorrowed))
}

func TestUserBookService_ListBorrowed(t *testing.T) {
	fixture := newBorrowFixture()
	ctx := context.Background()
	userID := uuid.New()

	_, firstBook := fixture.seedAuthorAndBook(t, "George Orwell", "1984", "978-0-452-28423-4", "Dystopian")
	_, secondBook := fixture.seedAuthorAndBook(t, "Jane Austen", "Emma", "978-0-14-143958-8", "Romance")

	_, err := fixture.userBookService.Borrow(ctx, userID, firstBook)
	require.NoError(t, err)
	_, err = fixture.userBookService.Borrow(ctx, userID, secondBook)
	require.NoError(t, err)

	// Another user's loan does not leak into the listing.
	_, err = fixture.userBookService.Borrow(ctx, uuid.New(), firstBook)
	require.NoError(t, err)

	page, err := fixture.userBookService.ListBorrowed(ctx, userID, usecase.PageInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Records, 2)
	assert.NotNil(t, page.Records[0].Book)
}
