package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err  *Error
		code int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestWrapKeepsCodeAndCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Conflict("CPF already registered").Wrap(cause)

	assert.Equal(t, http.StatusConflict, err.Code)
	assert.Equal(t, "CPF already registered", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFrom(t *testing.T) {
	base := NotFound("Patient not found")

	appErr, ok := From(base)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)

	wrapped := fmt.Errorf("usecase: %w", base)
	appErr, ok = From(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Patient not found", appErr.Message)

	_, ok = From(errors.New("plain"))
	assert.False(t, ok)
}
