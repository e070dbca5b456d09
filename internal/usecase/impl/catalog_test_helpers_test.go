package impl

import (
	"context"
	"sort"
	"sync"

	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"

	"github.com/google/uuid"
)

type fakeAuthorRepo struct {
	mu      sync.Mutex
	authors map[uuid.UUID]*entity.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uuid.UUID]*entity.Author)}
}

func (r *fakeAuthorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if author, ok := r.authors[id]; ok {
		copied := *author

		return &copied, nil
	}

	return nil, repository.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) FindPage(_ context.Context, page, pageSize int) ([]*entity.Author, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entity.Author, 0, len(r.authors))
	for _, author := range r.authors {
		copied := *author
		all = append(all, &copied)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := min(start+pageSize, len(all))

	return all[start:end], int64(len(all)), nil
}

func (r *fakeAuthorRepo) Create(_ context.Context, author *entity.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	author.ID = uuid.New()
	copied := *author
	r.authors[author.ID] = &copied

	return nil
}

func (r *fakeAuthorRepo) Update(_ context.Context, author *entity.Author) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.authors[author.ID]; !ok {
		return repository.ErrAuthorNotFound
	}
	copied := *author
	r.authors[author.ID] = &copied

	return nil
}

func (r *fakeAuthorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.authors[id]; !ok {
		return repository.ErrAuthorNotFound
	}
	delete(r.authors, id)

	return nil
}

type fakeBookRepo struct {
	mu         sync.Mutex
	books      map[uuid.UUID]*entity.Book
	authorRepo *fakeAuthorRepo
}

func newFakeBookRepo(authorRepo *fakeAuthorRepo) *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uuid.UUID]*entity.Book), authorRepo: authorRepo}
}

func (r *fakeBookRepo) withAuthor(ctx context.Context, book *entity.Book) *entity.Book {
	copied := *book
	if author, err := r.authorRepo.FindByID(ctx, book.AuthorID); err == nil {
		copied.Author = author
	}

	return &copied
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	r.mu.Lock()
	book, ok := r.books[id]
	r.mu.Unlock()

	if !ok {
		return nil, repository.ErrBookNotFound
	}

	return r.withAuthor(ctx, book), nil
}

func (r *fakeBookRepo) FindByIsbn(ctx context.Context, isbn string) (*entity.Book, error) {
	r.mu.Lock()
	var found *entity.Book
	for _, book := range r.books {
		if book.Isbn == isbn {
			found = book

			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return nil, repository.ErrBookNotFound
	}

	return r.withAuthor(ctx, found), nil
}

func (r *fakeBookRepo) FindPage(ctx context.Context, filter repository.BookFilter, page, pageSize int) ([]*entity.Book, int64, error) {
	r.mu.Lock()
	all := make([]*entity.Book, 0, len(r.books))
	for _, book := range r.books {
		all = append(all, book)
	}
	r.mu.Unlock()

	matched := make([]*entity.Book, 0, len(all))
	for _, book := range all {
		loaded := r.withAuthor(ctx, book)
		if filter.Genre != "" && loaded.Genre != filter.Genre {
			continue
		}
		if filter.AuthorName != "" && (loaded.Author == nil || loaded.Author.Name != filter.AuthorName) {
			continue
		}
		matched = append(matched, loaded)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })

	start := (page - 1) * pageSize
	if start >= len(matched) {
		return nil, int64(len(matched)), nil
	}
	end := min(start+pageSize, len(matched))

	return matched[start:end], int64(len(matched)), nil
}

func (r *fakeBookRepo) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entity.Book, error) {
	r.mu.Lock()
	all := make([]*entity.Book, 0, len(r.books))
	for _, book := range r.books {
		if book.AuthorID == authorID {
			all = append(all, book)
		}
	}
	r.mu.Unlock()

	books := make([]*entity.Book, 0, len(all))
	for _, book := range all {
		books = append(books, r.withAuthor(ctx, book))
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })

	return books, nil
}

func (r *fakeBookRepo) Create(_ context.Context, book *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book.ID = uuid.New()
	copied := *book
	r.books[book.ID] = &copied

	return nil
}

func (r *fakeBookRepo) Update(_ context.Context, book *entity.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[book.ID]; !ok {
		return repository.ErrBookNotFound
	}
	copied := *book
	r.books[book.ID] = &copied

	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return repository.ErrBookNotFound
	}
	delete(r.books, id)

	return nil
}

type borrowKey struct {
	userID uuid.UUID
	bookID uuid.UUID
}

type fakeUserBookRepo struct {
	mu       sync.Mutex
	records  map[borrowKey]*entity.UserBook
	bookRepo *fakeBookRepo
}

func newFakeUserBookRepo(bookRepo *fakeBookRepo) *fakeUserBookRepo {
	return &fakeUserBookRepo{records: make(map[borrowKey]*entity.UserBook), bookRepo: bookRepo}
}

func (r *fakeUserBookRepo) Find(_ context.Context, userID, bookID uuid.UUID) (*entity.UserBook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record, ok := r.records[borrowKey{userID, bookID}]; ok {
		copied := *record

		return &copied, nil
	}

	return nil, repository.ErrUserBookNotFound
}

func (r *fakeUserBookRepo) FindBorrowedPage(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*entity.UserBook, int64, error) {
	r.mu.Lock()
	all := make([]*entity.UserBook, 0, len(r.records))
	for _, record := range r.records {
		if record.UserID == userID {
			all = append(all, record)
		}
	}
	r.mu.Unlock()

	records := make([]*entity.UserBook, 0, len(all))
	for _, record := range all {
		copied := *record
		if book, err := r.bookRepo.FindByID(ctx, record.BookID); err == nil {
			copied.Book = book
		}
		records = append(records, &copied)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].TakenDate.After(records[j].TakenDate) })

	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil, int64(len(records)), nil
	}
	end := min(start+pageSize, len(records))

	return records[start:end], int64(len(records)), nil
}

func (r *fakeUserBookRepo) Create(_ context.Context, record *entity.UserBook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := borrowKey{record.UserID, record.BookID}
	if _, ok := r.records[key]; ok {
		return domainerrors.ErrBookAlreadyBorrowed
	}
	copied := *record
	r.records[key] = &copied

	return nil
}

func (r *fakeUserBookRepo) Delete(_ context.Context, userID, bookID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := borrowKey{userID, bookID}
	if _, ok := r.records[key]; !ok {
		return repository.ErrUserBookNotFound
	}
	delete(r.records, key)

	return nil
}
