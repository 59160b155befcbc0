package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDomainErrorSimple(t *testing.T) {
	e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	assert.Equal(t, "INVALID_REQUEST", e.Code)
	assert.Equal(t, http.StatusBadRequest, e.HTTPStatus)
	assert.Equal(t, "Invalid request", e.Error())
	assert.Equal(t, HTTPError{Error: "Invalid request", Code: "INVALID_REQUEST"}, e.ToHTTPError())
}

func TestNewDomainError(t *testing.T) {
	cause := errors.New("upstream timeout")
	e := NewDomainError("PRICE_LOOKUP_FAILED", "Failed to fetch prices", cause, 0)

	assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus)
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "Failed to fetch prices: upstream timeout", e.Error())

	body := e.ToHTTPError()
	assert.Equal(t, "Failed to fetch prices", body.Error)
	assert.Equal(t, "upstream timeout", body.Details)
}
