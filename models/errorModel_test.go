package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad").Status)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("missing").Status)
	assert.Equal(t, http.StatusConflict, NewConflictError("dup").Status)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("broke", nil).Status)
}

func TestAppErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError("Error retrieving users", cause)

	assert.Equal(t, "Error retrieving users: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewValidationError("orderId is required")
	assert.Equal(t, "orderId is required", err.Error())
	assert.Nil(t, err.Unwrap())
}
