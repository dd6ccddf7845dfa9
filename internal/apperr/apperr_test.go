package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	cause := errors.New("disk full") //nolint:goerr113

	tests := []struct {
		name    string
		err     *Error
		is      error
		status  int
		message string
	}{
		{"validation", Validation("sort order must be between %d and %d", 1, 100), ErrValidation, http.StatusBadRequest, "sort order must be between 1 and 100"},
		{"conflict", Conflict("sort order %d is taken", 5), ErrConflict, http.StatusBadRequest, "sort order 5 is taken"},
		{"auth", Auth(nil, "token expired"), ErrAuth, http.StatusUnauthorized, "token expired"},
		{"forbidden", Forbidden("admin only"), ErrForbidden, http.StatusForbidden, "admin only"},
		{"not found", NotFound("group %q not found", "ops"), ErrNotFound, http.StatusNotFound, `group "ops" not found`},
		{"store", Store(cause, "failed to save"), ErrStore, http.StatusInternalServerError, "failed to save: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.is)
			assert.Equal(t, tt.status, tt.err.Status())
			assert.Equal(t, tt.message, tt.err.Error())

			wrapped := fmt.Errorf("handler: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.is)
			assert.Same(t, tt.err, From(wrapped))
		})
	}

	assert.NotErrorIs(t, Validation("x"), ErrConflict)
}

func TestStoreUnwrap(t *testing.T) {
	cause := errors.New("connection reset") //nolint:goerr113

	err := Store(cause, "failed to list groups")
	assert.ErrorIs(t, err, cause)

	plain := From(cause)
	assert.ErrorIs(t, plain, ErrStore)
	assert.ErrorIs(t, plain, cause)
	assert.Equal(t, http.StatusInternalServerError, plain.Status())
}
