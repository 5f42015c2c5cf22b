package server

import (
	"errors"
	"net/http"
	"testing"
	"time"

	authdomain "github.com/smallbiznis/rentora/internal/auth/domain"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	rentaldomain "github.com/smallbiznis/rentora/internal/rental/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{"not found", rentaldomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{"session expired", authdomain.ErrSessionExpired, http.StatusUnauthorized, "unauthorized"},
		{"spec in use", catalogdomain.ErrSpecInUse, http.StatusConflict, "conflict"},
		{"already returned", rentaldomain.ErrAlreadyReturned, http.StatusConflict, "conflict"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := mapError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.typ, payload.Type)
		})
	}
}

func TestMapErrorValidationField(t *testing.T) {
	status, payload := mapError(customerdomain.ErrInvalidEmail)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", payload.Type)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "email", payload.Errors[0].Field)
		assert.Equal(t, "invalid_email", payload.Errors[0].Code)
	}
}

func TestMapErrorRentalConflictMessage(t *testing.T) {
	to := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	err := &rentaldomain.ConflictError{
		Conflict: rentaldomain.Conflict{
			From:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			To:           &to,
			CustomerName: "Jordan Diaz",
		},
	}

	status, payload := mapError(err)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "conflict", payload.Type)
	assert.Equal(t, "asset is already rented to Jordan Diaz for Mar 1, 2026 - Mar 14, 2026", payload.Message)
}

func TestMapErrorValidationErrorsPassthrough(t *testing.T) {
	status, payload := mapError(newValidationError("month", "invalid_month", "month must be between 1 and 12"))
	assert.Equal(t, http.StatusBadRequest, status)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "month", payload.Errors[0].Field)
	}
}
