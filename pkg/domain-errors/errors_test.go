package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := New(CodeValidation, "email is required")
	assert.True(t, HasCode(err, CodeValidation))
	assert.False(t, HasCode(err, CodeInternal))
	assert.False(t, HasCode(errors.New("plain"), CodeValidation))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeUnavailable, "store unreachable")

	assert.True(t, HasCode(err, CodeUnavailable))
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("subscribe: %w", err), cause)
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeValidation))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeInvariantViolation))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(CodeUnauthorized))
	assert.Equal(t, http.StatusServiceUnavailable, ToHTTPStatus(CodeUnavailable))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("unknown")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "email is required", MessageOf(New(CodeValidation, "email is required")))
	assert.Equal(t, "internal error", MessageOf(errors.New("sql: no rows")))
}
