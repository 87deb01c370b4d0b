package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/portfolio-admin/portfolio-admin/internal/db/controller/collection"
)

// ErrorStatus maps a store error to its HTTP status.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, collection.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, collection.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, collection.ErrTransport), errors.Is(err, collection.ErrDBNil):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
