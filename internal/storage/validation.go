package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error kinds surfaced by the store. Callers match with errors.Is.
var (
	// ErrValidation is returned for invalid input: non-positive amounts,
	// missing required fields, unknown enum values, bad references.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an identifier resolves to nothing.
	ErrNotFound = errors.New("not found")
	// ErrParse is returned for malformed import documents. Corrupted
	// persisted collections are recovered to defaults instead, with the
	// wrapped ErrParse logged rather than propagated.
	ErrParse = errors.New("parse failed")

	// ErrNilContext guards against nil contexts on the storage boundary.
	ErrNilContext = errors.New("context cannot be nil")
)

// validate checks struct tags on store inputs.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// "notblank": non-empty after trimming whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateInput runs struct-tag validation and folds the result into
// ErrValidation so callers have a single error kind to match.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
