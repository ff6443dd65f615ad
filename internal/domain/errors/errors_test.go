package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("boom")
	appErr := NewAppError(http.StatusBadRequest, "bad input", inner)

	assert.Equal(t, "boom", appErr.Error())
	assert.ErrorIs(t, appErr, inner)

	noInner := NewAppError(http.StatusBadRequest, "bad input", nil)
	assert.Equal(t, "bad input", noInner.Error())
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err      *AppError
		status   int
		sentinel error
	}{
		{NotFound("missing"), http.StatusNotFound, ErrNotFound},
		{BadRequest("bad"), http.StatusBadRequest, ErrInvalidInput},
		{Unauthorized("nope"), http.StatusUnauthorized, ErrUnauthorized},
		{Forbidden("denied"), http.StatusForbidden, ErrForbidden},
		{Conflict("dup"), http.StatusConflict, ErrAlreadyExists},
		{InternalError(errors.New("x")), http.StatusInternalServerError, nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		if tc.sentinel != nil {
			assert.ErrorIs(t, tc.err, tc.sentinel)
		}
	}
}

func TestNewError_WrapsWithMessage(t *testing.T) {
	err := NewError("application already submitted", ErrAlreadyExists)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "application already submitted", appErr.Message)
}
