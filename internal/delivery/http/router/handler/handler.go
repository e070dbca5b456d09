// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"library/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseUUIDParam reads a path parameter and parses it as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s parameter", name)
	}

	return id, nil
}

// parsePage reads the page/pageSize query parameters. Absent parameters are
// left zero so the usecase layer applies its defaults; range checks also
// happen there.
func parsePage(c echo.Context) usecase.PageInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	return usecase.PageInput{Page: page, PageSize: pageSize}
}

// currentUserID returns the authenticated user's ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
