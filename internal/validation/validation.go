// Package validation checks request inputs with struct tags and reports
// failures as domain validation errors.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperr "blogapi/internal/errors"
)

var validate = validator.New()

// Struct validates v and returns the first failing field as a
// validation error, e.g. "Title is required.".
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.NewInternal("validate input", err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperr.NewValidation(fmt.Sprintf("%s is required.", fe.Field()))
	case "max":
		return apperr.NewValidation(fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param()))
	default:
		return apperr.NewValidation(fmt.Sprintf("%s is invalid.", fe.Field()))
	}
}
