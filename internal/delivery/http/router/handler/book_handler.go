package handler

import (
	"net/http"

	"library/internal/delivery/http/response"
	"library/internal/domain/entity"
	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for book catalog handlers.
type BookHandler struct {
	uc usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.BookUsecase) *BookHandler {
	return &BookHandler{uc: uc}
}

type bookRequest struct {
	Isbn        string    `json:"isbn"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Description string    `json:"description"`
	AuthorID    uuid.UUID `json:"authorId"`
}

func (r bookRequest) toInput() usecase.BookInput {
	return usecase.BookInput{
		Isbn:        r.Isbn,
		Title:       r.Title,
		Genre:       r.Genre,
		Description: r.Description,
		AuthorID:    r.AuthorID,
	}
}

type bookResponse struct {
	ID          uuid.UUID       `json:"id"`
	Isbn        string          `json:"isbn"`
	Title       string          `json:"title"`
	Genre       string          `json:"genre"`
	Description string          `json:"description,omitempty"`
	Author      *authorResponse `json:"author,omitempty"`
}

func toBookResponse(book *entity.Book) bookResponse {
	resp := bookResponse{
		ID:          book.ID,
		Isbn:        book.Isbn,
		Title:       book.Title,
		Genre:       book.Genre,
		Description: book.Description,
	}
	if book.Author != nil {
		author := toAuthorResponse(book.Author)
		resp.Author = &author
	}

	return resp
}

type bookListResponse struct {
	Items    []bookResponse `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// Create handles the book creation request.
func (h *BookHandler) Create(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	book, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookResponse(book), "Book created successfully")
}

// Get handles the request for a single book, addressed by id or ISBN.
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.uc.Get(c.Request().Context(), c.Param("idOrIsbn"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book), "")
}

// List handles the paged book listing request with optional genre and
// author-name filters.
func (h *BookHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), usecase.BookListInput{
		Page:       parsePage(c),
		Genre:      c.QueryParam("genre"),
		AuthorName: c.QueryParam("author"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]bookResponse, 0, len(page.Books))
	for _, book := range page.Books {
		items = append(items, toBookResponse(book))
	}

	return response.Success(c, http.StatusOK, bookListResponse{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, "")
}

// Update handles the book update request.
func (h *BookHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book id")
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}

	book, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book), "Book updated successfully")
}

// Delete handles the book deletion request.
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book deleted successfully")
}
