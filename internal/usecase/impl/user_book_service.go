package impl

import (
	"context"
	"log/slog"
	"time"

	"library/config"
	deliverycontext "library/internal/delivery/context"
	"library/internal/domain/entity"
	domainerrors "library/internal/domain/errors"
	"library/internal/domain/repository"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultBorrowHours = 14 * 24

// userBookService implements the UserBookUsecase interface.
type userBookService struct {
	txManager    repository.TransactionManager
	userBookRepo repository.UserBookRepository
	borrowPeriod time.Duration
	logger       *slog.Logger
}

// UserBookServiceParams holds dependencies for userBookService, injected by Fx.
type UserBookServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserBookRepo repository.UserBookRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserBookService is the constructor for userBookService.
func NewUserBookService(params UserBookServiceParams) usecase.UserBookUsecase {
	borrowHours := defaultBorrowHours
	if params.Config != nil && params.Config.Borrow != nil && params.Config.Borrow.BookHours > 0 {
		borrowHours = params.Config.Borrow.BookHours
	}

	return &userBookService{
		txManager:    params.TxManager,
		userBookRepo: params.UserBookRepo,
		borrowPeriod: time.Duration(borrowHours) * time.Hour,
		logger:       params.Logger,
	}
}

func (srv *userBookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBorrowed returns one page of the books the user currently holds.
func (srv *userBookService) ListBorrowed(ctx context.Context, userID uuid.UUID, page usecase.PageInput) (*usecase.BorrowedListOutput, error) {
	pageNum, pageSize, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	records, total, err := srv.userBookRepo.FindBorrowedPage(ctx, userID, pageNum, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list borrowed books")
	}

	return &usecase.BorrowedListOutput{
		Records:  records,
		Total:    total,
		Page:     pageNum,
		PageSize: pageSize,
	}, nil
}

// Borrow creates a borrowing record for the user. The book lookup and the
// record insert share one transaction so a concurrently deleted book cannot
// be borrowed.
func (srv *userBookService) Borrow(ctx context.Context, userID, bookID uuid.UUID) (*entity.UserBook, error) {
	var record *entity.UserBook

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		userBookRepo := repoFactory.UserBookRepo()

		book, err := bookRepo.FindByID(ctx, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to find book to borrow")
		}

		now := time.Now()
		record = &entity.UserBook{
			UserID:     userID,
			BookID:     bookID,
			Book:       book,
			TakenDate:  now,
			ReturnDate: now.Add(srv.borrowPeriod),
		}

		if err := userBookRepo.Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create borrow record")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Borrow failed", slog.Any("userID", userID), slog.Any("bookID", bookID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Book borrowed", slog.Any("userID", userID), slog.Any("bookID", bookID))

	return record, nil
}

// Return removes the user's borrowing record for the book.
func (srv *userBookService) Return(ctx context.Context, userID, bookID uuid.UUID) error {
	if err := srv.userBookRepo.Delete(ctx, userID, bookID); err != nil {
		if errors.Is(err, repository.ErrUserBookNotFound) {
			return domainerrors.ErrBorrowRecordNotFound
		}

		return errors.Wrap(err, "failed to return book")
	}

	srv.log(ctx).Info("Book returned", slog.Any("userID", userID), slog.Any("bookID", bookID))

	return nil
}
