package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("fragrance", "frag-123")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "fragrance")
	assert.Contains(t, err.Message, "frag-123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("quantity must not be negative")

	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestServiceUnavailable(t *testing.T) {
	err := ServiceUnavailable("catalog is temporarily unavailable")

	assert.Equal(t, "SERVICE_UNAVAILABLE", err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
	assert.ErrorIs(t, err, ErrServiceUnavail)
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := Internal(inner)

	assert.ErrorIs(t, err, inner)
}

func TestWrap(t *testing.T) {
	inner := ErrNotFound
	err := Wrap(inner, "load settings")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "load settings")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found sentinel", ErrNotFound, http.StatusNotFound},
		{"invalid input sentinel", ErrInvalidInput, http.StatusBadRequest},
		{"unauthorized sentinel", ErrUnauthorized, http.StatusUnauthorized},
		{"service unavailable sentinel", ErrServiceUnavail, http.StatusServiceUnavailable},
		{"wrapped sentinel", fmt.Errorf("outer: %w", ErrInvalidInput), http.StatusBadRequest},
		{"app error", Unauthorized("session required"), http.StatusUnauthorized},
		{"unknown error", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
