package mirror

import (
	"errors"
	"strings"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
)

// Describe converts a store error into a short human readable reason.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, collection.ErrValidation):
		var validationErr *collection.ValidationError
		if errors.As(err, &validationErr) {
			return strings.Join(validationErr.Problems, ", ")
		}

		return "invalid input"
	case errors.Is(err, collection.ErrNotFound):
		return "it no longer exists"
	case errors.Is(err, collection.ErrTransport), errors.Is(err, collection.ErrDBNil):
		return "the store is unavailable, please try again"
	default:
		return "unexpected error"
	}
}
