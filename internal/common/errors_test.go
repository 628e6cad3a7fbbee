package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetails_LeavesSentinelUntouched(t *testing.T) {
	detailed := ErrNotFound.WithDetails("User not found with this email.")

	assert.Nil(t, ErrNotFound.Details)
	assert.Equal(t, "User not found with this email.", detailed.Details)
	assert.Equal(t, ErrNotFound.StatusCode, detailed.StatusCode)
	assert.Equal(t, ErrNotFound.Code, detailed.Code)
}

func TestErrorsIs_MatchesAcrossCopies(t *testing.T) {
	detailed := ErrForbidden.WithDetails("You may only modify your own donation requests.")

	assert.ErrorIs(t, detailed, ErrForbidden)
	assert.NotErrorIs(t, detailed, ErrNotFound)

	wrapped := fmt.Errorf("mutation rejected: %w", detailed)
	assert.ErrorIs(t, wrapped, ErrForbidden)
}

func TestIsAPIError(t *testing.T) {
	apiErr, ok := IsAPIError(ErrPaymentNotCompleted)
	assert.True(t, ok)
	assert.Equal(t, 402, apiErr.StatusCode)

	_, ok = IsAPIError(errors.New("plain error"))
	assert.False(t, ok)
}
