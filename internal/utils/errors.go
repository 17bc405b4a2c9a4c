package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Client-facing errors. The messages are part of the API contract and are
// returned verbatim in the {"error": ...} payload.
var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrNotFound     = errors.New("Not found")

	ErrMissingEmail    = errors.New("Missing email")
	ErrMissingPassword = errors.New("Missing password")
	ErrAlreadyExist    = errors.New("Already exist")

	ErrMissingName     = errors.New("Missing name")
	ErrMissingType     = errors.New("Missing type")
	ErrMissingData     = errors.New("Missing data")
	ErrParentNotFound  = errors.New("Parent not found")
	ErrParentNotFolder = errors.New("Parent is not a folder")
	ErrFolderNoContent = errors.New("A folder doesn't have content")
)

// StatusCode maps a service error to its HTTP status. Unrecognized errors
// are internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrMissingEmail),
		errors.Is(err, ErrMissingPassword),
		errors.Is(err, ErrAlreadyExist),
		errors.Is(err, ErrMissingName),
		errors.Is(err, ErrMissingType),
		errors.Is(err, ErrMissingData),
		errors.Is(err, ErrParentNotFound),
		errors.Is(err, ErrParentNotFolder),
		errors.Is(err, ErrFolderNoContent):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
