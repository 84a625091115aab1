package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.NoError(t, Classify("op", nil))

	// Los errores de dominio no se envuelven
	wrapped := fmt.Errorf("pets: %w", ErrNotFound)
	assert.Same(t, wrapped, Classify("op", wrapped))

	err := Classify("ratings.create", context.DeadlineExceeded)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, "store ratings.create: context deadline exceeded (retryable)", err.Error())

	err = Classify("ratings.create", errors.New("syntax error"))
	assert.False(t, IsRetryable(err))

	// Un StoreError ya clasificado conserva su op original
	again := Classify("outer", err)
	var se *StoreError
	assert.ErrorAs(t, again, &se)
	assert.Equal(t, "ratings.create", se.Op)
}

func TestValidationErrorIsValidation(t *testing.T) {
	err := Invalid("must be between 1 and 5", "value")
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsDomain(err))
	assert.Equal(t, "invalid input: must be between 1 and 5 (value)", err.Error())
}
