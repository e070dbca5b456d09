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

// AuthorHandler holds dependencies for author catalog handlers.
type AuthorHandler struct {
	uc usecase.AuthorUsecase
}

// NewAuthorHandler is the constructor for AuthorHandler, injected by Fx.
func NewAuthorHandler(uc usecase.AuthorUsecase) *AuthorHandler {
	return &AuthorHandler{uc: uc}
}

type authorRequest struct {
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

func (r authorRequest) toInput() usecase.AuthorInput {
	return usecase.AuthorInput{
		Name:        r.Name,
		Country:     r.Country,
		DateOfBirth: r.DateOfBirth,
	}
}

type authorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

func toAuthorResponse(author *entity.Author) authorResponse {
	return authorResponse{
		ID:          author.ID,
		Name:        author.Name,
		Country:     author.Country,
		DateOfBirth: author.DateOfBirth,
	}
}

type authorListResponse struct {
	Items    []authorResponse `json:"items"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// Create handles the author creation request.
func (h *AuthorHandler) Create(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}

	author, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthorResponse(author), "Author created successfully")
}

// Get handles the request for a single author.
func (h *AuthorHandler) Get(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author id")
	}

	author, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthorResponse(author), "")
}

// List handles the paged author listing request.
func (h *AuthorHandler) List(c echo.Context) error {
	page, err := h.uc.List(c.Request().Context(), parsePage(c))
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]authorResponse, 0, len(page.Authors))
	for _, author := range page.Authors {
		items = append(items, toAuthorResponse(author))
	}

	return response.Success(c, http.StatusOK, authorListResponse{
		Items:    items,
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, "")
}

// Update handles the author update request.
func (h *AuthorHandler) Update(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author id")
	}

	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}

	author, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthorResponse(author), "Author updated successfully")
}

// Delete handles the author deletion request.
func (h *AuthorHandler) Delete(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Author deleted successfully")
}

// ListBooks handles the request for every book written by an author.
func (h *AuthorHandler) ListBooks(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author id")
	}

	books, err := h.uc.ListBooks(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]bookResponse, 0, len(books))
	for _, book := range books {
		items = append(items, toBookResponse(book))
	}

	return response.Success(c, http.StatusOK, items, "")
}
