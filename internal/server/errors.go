package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/site-content/internal/content"
	"github.com/jonathan/site-content/internal/jsonld"
)

// ErrNotFound indicates a record slug that does not exist in its category
type ErrNotFound struct {
	Category string
	Slug     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s record not found: %s", e.Category, e.Slug)
}

// ErrInvalidRequest indicates request validation failure
type ErrInvalidRequest struct {
	Field   string
	Message string
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid request: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error. Content
// that fails to load or validate makes the category unavailable rather than
// partially served.
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		invalid    *ErrInvalidRequest
		loadErr    *content.LoadError
		validation *content.ValidationError
	)
	switch {
	case errors.As(err, &notFound), errors.Is(err, content.ErrUnknownCategory), errors.Is(err, jsonld.ErrUnknownKind):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.Is(err, jsonld.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.As(err, &loadErr), errors.As(err, &validation):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
