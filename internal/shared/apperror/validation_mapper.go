package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns employee_id into "Employee Id".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts gin binding errors into a single AppError
// listing every failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		if len(errs) == 1 {
			return fieldError(errs[0])
		}
		details := make([]string, 0, len(errs))
		for _, e := range errs {
			details = append(details, fieldError(e).Message)
		}
		return Validation(details)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}

func fieldError(e validator.FieldError) *AppError {
	humanReadableField := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return RequiredField(humanReadableField)
	default:
		return InvalidField(humanReadableField)
	}
}
