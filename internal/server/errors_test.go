package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/site-content/internal/content"
	"github.com/jonathan/site-content/internal/jsonld"
)

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Category: "projects", Slug: "missing"}
	assert.Equal(t, "projects record not found: missing", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrInvalidRequest(t *testing.T) {
	err := &ErrInvalidRequest{Field: "kind", Message: "unsupported"}
	assert.Equal(t, "invalid request: kind - unsupported", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_UnknownCategory(t *testing.T) {
	err := fmt.Errorf("%w: %q", content.ErrUnknownCategory, "widgets")
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus_StructuredData(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(fmt.Errorf("%w: %q", jsonld.ErrUnknownKind, "product")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(fmt.Errorf("%w: %q", jsonld.ErrInvalidPath, "")))
}

func TestHTTPStatus_ContentUnavailable(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(&content.LoadError{Category: "blog"}))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(fmt.Errorf("wrapped: %w", &content.ValidationError{Category: "case-studies", Review: true})))
}

func TestHTTPStatus_Default(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
