package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/distribution-service/internal/command"
)

func TestToDomainErrorPassesThroughDomainErrors(t *testing.T) {
	original := NewUnauthorized("nope")
	mapped := ToDomainError(original)
	assert.Equal(t, "UNAUTHORIZED", mapped.Code)
	assert.Equal(t, http.StatusUnauthorized, mapped.HTTPStatus)
}

func TestToDomainErrorMapsFieldValidation(t *testing.T) {
	err := command.AuthenticateUserCommand{Email: "   ", Password: "Secure1!"}.Validate()
	require.Error(t, err)

	mapped := ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "Invalid email format", mapped.Message)
	assert.Equal(t, "email", mapped.Details["field"])
}

func TestToDomainErrorMapsAggregateValidation(t *testing.T) {
	err := command.UpdateAreaCommand{}.Validate()
	require.Error(t, err)

	mapped := ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, []string{
		"Area ID is required",
		"Updated by is required",
	}, mapped.Details["validation_errors"])
}

func TestToDomainErrorMapsNoRowsToNotFound(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsUnknownErrors(t *testing.T) {
	mapped := ToDomainError(errors.New("disk on fire"))
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	assert.ErrorContains(t, mapped, "disk on fire")
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
