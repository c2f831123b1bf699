package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictFamily(t *testing.T) {
	assert.True(t, errors.Is(ErrOverpayment, ErrConflict))
	assert.True(t, errors.Is(ErrDuplicate, ErrConflict))
	assert.False(t, errors.Is(ErrOverpayment, ErrDuplicate))

	wrapped := fmt.Errorf("%w: remaining 0.00", ErrOverpayment)
	assert.True(t, errors.Is(wrapped, ErrOverpayment))
	assert.True(t, errors.Is(wrapped, ErrConflict))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := NewNotFoundError("contact", "c-1")
	appErr := NewAppError(404, "lookup failed", cause)

	assert.True(t, errors.Is(appErr, ErrNotFound))
	assert.Contains(t, appErr.Error(), "contact c-1")

	noCause := NewAppError(500, "boom", nil)
	assert.True(t, errors.Is(noCause, ErrInternal))
}

func TestHelpers(t *testing.T) {
	assert.True(t, errors.Is(NewValidationError("quantity %s is negative", "-1"), ErrValidation))
	assert.True(t, errors.Is(NewConflictError("order %s already converted", "o-1"), ErrConflict))
}
