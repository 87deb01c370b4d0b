package collection

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an update or delete addresses an unknown id.
	ErrNotFound = errors.New("record not found")
	// ErrTransport is returned when the store is unreachable or a request failed.
	ErrTransport = errors.New("store request failed")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// ValidationError lists the problems found in a record. It matches ErrValidation.
type ValidationError struct {
	Problems []string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, ", ")
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// newValidationError turns validator errors into problems like
// "title is required" or "date must be greater than 0".
func newValidationError(err error) *ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ValidationError{Problems: []string{err.Error()}}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		field := strings.ToLower(ve.Field()[:1]) + ve.Field()[1:]

		switch ve.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "gt":
			messages = append(messages, field+" must be greater than "+ve.Param())
		default:
			messages = append(messages, field+" failed validation tag '"+ve.Tag()+"'")
		}
	}

	return &ValidationError{Problems: messages}
}
