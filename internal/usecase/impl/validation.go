// Package impl contains the implementation of the application's business logic.
package impl

import (
	"regexp"
	"strings"

	domainerrors "library/internal/domain/errors"
	"library/internal/errors"
	"library/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// usernameCharsPattern limits display names to letters, digits, spaces and
// a small set of punctuation.
var usernameCharsPattern = regexp.MustCompile(`^[a-zA-Z0-9 _@.+-]+$`)

func newInputValidator() *validator.Validate {
	v := validator.New()

	// Registration only fails for a nil function; the error is impossible here.
	_ = v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernameCharsPattern.MatchString(fl.Field().String())
	})

	return v
}

// validateInput checks a DTO against its validate tags and reports every
// violated field at once.
func validateInput(v *validator.Validate, input any) error {
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	violations := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, fieldErr.Field()+": failed '"+fieldErr.Tag()+"' validation")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

// normalizePage applies the listing defaults and bounds: page >= 1,
// page size 1..100, defaults 1/10.
func normalizePage(input usecase.PageInput) (page, pageSize int, err error) {
	page = input.Page
	if page == 0 {
		page = defaultPage
	}
	pageSize = input.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	if page < 1 {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("page must be at least 1")
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("pageSize must be between 1 and 100")
	}

	return page, pageSize, nil
}
