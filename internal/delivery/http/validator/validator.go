// Package validator adapts go-playground/validator as the echo request validator.
package validator

import (
	"net/http"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps the validator instance bound to the echo server.
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validator: playgroundvalidator.New()}
}

// Validate checks a bound request struct against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
