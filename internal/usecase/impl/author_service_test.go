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

type catalogFixture struct {
	authorService usecase.AuthorUsecase
	bookService   usecase.BookUsecase
	authorRepo    *fakeAuthorRepo
	bookRepo      *fakeBookRepo
}

func newCatalogFixture() *catalogFixture {
	authorRepo := newFakeAuthorRepo()
	bookRepo := newFakeBookRepo(authorRepo)

	return &catalogFixture{
		authorService: NewAuthorService(AuthorServiceParams{
			AuthorRepo: authorRepo,
			BookRepo:   bookRepo,
			Logger:     newDiscardLogger(),
		}),
		bookService: NewBookService(BookServiceParams{
			BookRepo:   bookRepo,
			AuthorRepo: authorRepo,
			Logger:     newDiscardLogger(),
		}),
		authorRepo: authorRepo,
		bookRepo:   bookRepo,
	}
}

func authorInput(name string) usecase.AuthorInput {
	return usecase.AuthorInput{
		Name:        name,
		Country:     "United Kingdom",
		DateOfBirth: time.Date(1903, 6, 25, 0, 0, 0, 0, time.UTC),
	}
}

func TestAuthorService_CreateAndGet(t *testing.T) {
	fixture := newCatalogFixture()
	ctx := context.Background()

	created, err := fixture.authorService.Create(ctx, authorInput("George Orwell"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := fixture.authorService.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", got.Name)
	assert.Equal(t, "United Kingdom", got.Country)
}

func TestAuthorService_Get_NotFound(t *testing.T) {
	fixture := newCatalogFixture()

	_, err := fixture.authorService.Get(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrAuthorNotFound))
}

func TestAuthorService_Create_Validation(t *testing.T) {
	fixture := newCatalogFixture()

	_, err := fixture.authorService.Create(context.Background(), usecase.AuthorInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthorService_List_Pagination(t *testing.T) {
	fixture := newCatalogFixture()
	ctx := context.Background()

	names := []string{"Charles Dickens", "Agatha Christie", "Emily Bronte"}
	for _, name := range names {
		_, err := fixture.authorService.Create(ctx, authorInput(name))
		require.NoError(t, err)
	}

	page, err := fixture.authorService.List(ctx, usecase.PageInput{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Authors, 2)
	assert.Equal(t, "Agatha Christie", page.Authors[0].Name)
	assert.Equal(t, "Charles Dickens", page.Authors[1].Name)

	page, err = fixture.authorService.List(ctx, usecase.PageInput{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Authors, 1)
	assert.Equal(t, "Emily Bronte", page.Authors[0].Name)
}

func TestAuthorService_List_Defaults(t *testing.T) {
	fixture := newCatalogFixture()

	page, err := fixture.authorService.List(context.Background(), usecase.PageInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
}

func TestAuthorService_List_InvalidPage(t *testing.T) {
	fixture := newCatalogFixture()
	ctx := context.Background()

	_, err := fixture.authorService.List(ctx, usecase.PageInput{Page: -1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fixture.authorService.List(ctx, usecase.PageInput{PageSize: 101})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthorService_UpdateAndDelete(t *testing.T) {
	fixture := newCatalogFixture()
	ctx := context.Background()

	created, err := fixture.authorService.Create(ctx, authorInput("George Orwel"))
	require.NoError(t, err)

	updated, err := fixture.authorService.Update(ctx, created.ID, authorInput("George Orwell"))
	require.NoError(t, err)
	assert.Equal(t, "George Orwell", updated.Name)

	require.NoError(t, fixture.authorService.Delete(ctx, created.ID))

	err = fixture.authorService.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthorNotFound))
}

func TestAuthorService_ListBooks(t *testing.T) {
	fixture := newCatalogFixture()
	ctx := context.Background()

	author, err := fixture.authorService.Create(ctx, authorInput("George Orwell"))
	require.NoError(t, err)

	_, err = fixture.bookService.Create(ctx, usecase.BookInput{
		Isbn:     "978-0-452-28423-4",
		Title:    "1984",
		Genre:    "Dystopian",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	books, err := fixture.authorService.ListBooks(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Title)

	_, err = fixture.authorService.ListBooks(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrAuthorNotFound))
}
