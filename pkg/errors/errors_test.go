package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServerError_WithServerMessage(t *testing.T) {
	err := NewServerError(http.StatusBadRequest, "bad file")

	assert.Equal(t, "server returned status 400: bad file", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, IsType(err, ErrorTypeServer))
}

func TestNewServerError_Generic(t *testing.T) {
	err := NewServerError(http.StatusInternalServerError, "")

	assert.Equal(t, "server returned status 500", err.Error())
}

func TestNewTransportError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")
	err := NewTransportError(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadGateway, GetStatusCode(err))
	assert.True(t, IsType(err, ErrorTypeTransport))
	assert.False(t, IsType(err, ErrorTypeServer))
}

func TestNewTransportError_NilCause(t *testing.T) {
	assert.Equal(t, "request failed", NewTransportError(nil).Error())
}

func TestGetStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetStatusCode(NewValidationError("nope")))
	assert.Equal(t, http.StatusNotFound, GetStatusCode(NewNotFoundError("missing")))
	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(errors.New("plain")))

	wrapped := fmt.Errorf("analyze: %w", NewServerError(http.StatusNotFound, "PDF with id 7 not found for analysis."))
	assert.Equal(t, http.StatusNotFound, GetStatusCode(wrapped))
	assert.True(t, IsType(wrapped, ErrorTypeServer))
}

func TestNewInternalError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError("export failed", cause)

	assert.Equal(t, "export failed", err.Error())
	assert.ErrorIs(t, err, cause)
}
