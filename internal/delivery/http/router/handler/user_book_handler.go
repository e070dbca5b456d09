package handler

import (
	"net/http"
	"time"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserBookHandler holds dependencies for borrowing handlers.
type UserBookHandler struct {
	uc usecase.UserBookUsecase
}

// NewUserBookHandler is the constructor for UserBookHandler, injected by Fx.
func NewUserBookHandler(uc usecase.UserBookUsecase) *UserBookHandler {
	return &UserBookHandler{uc: uc}
}

type borrowedResponse struct {
	BookID     uuid.UUID     `json:"bookId"`
	Book       *bookResponse `json:"book,omitempty"`
	TakenDate  time.Time     `json:"takenDate"`
	ReturnDate time.Time     `json:"returnDate"`
}

func toBorrowedResponse(record *entity.UserBook) borrowedResponse {
	resp := borrowedResponse{
		BookID:     record.BookID,
		TakenDate:  record.TakenDate,
		ReturnDate: record.ReturnDate,
	}
	if record.Book != nil {
		book := toBookResponse(record.Book)
		resp.Book = &book
	}

	return resp
}

type borrowedListResponse struct {
	Items    []borrowedResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

// ListBorrowed handles the request for the authenticated user's current loans.
func (h *UserBookHandler) ListBorrowed(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.uc.ListBorrowed(c.Request().Context(), userID, parsePage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]borrowedResponse, 0, len(page.Records))
	for _, record := range page.Records {
		items = append(items, toBorrowedResponse(record))
	}

	return response.Success(c, http.StatusOK, borrowedListResponse{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, "")
}

// Borrow handles the request to borrow a book.
func (h *UserBookHandler) Borrow(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookID, err := parseUUIDParam(c, "bookID")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book id")
	}

	record, err := h.uc.Borrow(c.Request().Context(), userID, bookID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBorrowedResponse(record), "Book borrowed successfully")
}

// Return handles the request to return a borrowed book.
func (h *UserBookHandler) Return(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookID, err := parseUUIDParam(c, "bookID")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book id")
	}

	if err := h.uc.Return(c.Request().Context(), userID, bookID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book returned successfully")
}
