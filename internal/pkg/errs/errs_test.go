package errs_test

import (
	"errors"
	"testing"

	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("address", "user already has an active address at hub MIA: HT-MIA-00001/A")

		assert.Equal(t, "address", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"conflict: address: user already has an active address at hub MIA: HT-MIA-00001/A",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewConflictErrorWithCause("addressCode", "HT-MIA-00002/A", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "cause: duplicate key value")
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("PROCESSING", "SHIPPED", []string{"READY", "EXCEPTION"})

	assert.Equal(t, "PROCESSING", err.Current)
	assert.Equal(t, "SHIPPED", err.Requested)
	assert.Equal(t, []string{"READY", "EXCEPTION"}, err.Allowed)
	assert.Equal(t,
		"invalid status transition: from PROCESSING to SHIPPED, allowed transitions: READY, EXCEPTION",
		err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestInsufficientAmountError(t *testing.T) {
	err := errs.NewInsufficientAmountError("50.00", "55.00")

	assert.Equal(t,
		"insufficient amount: payment amount (50.00) is less than invoice total (55.00)",
		err.Error())
	assert.Equal(t, errs.ErrInsufficientAmount, err.Unwrap())
}

func TestAlreadySettledError(t *testing.T) {
	err := errs.NewAlreadySettledError("INV-2025-000042")

	assert.Equal(t, "invoice already settled: INV-2025-000042", err.Error())
	assert.Equal(t, errs.ErrAlreadySettled, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "insufficient amount", errs.ErrInsufficientAmount.Error())
		assert.Equal(t, "invoice already settled", errs.ErrAlreadySettled.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("userId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("age", 150, 0, 120), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("address", "duplicate"), errs.ErrConflict)
		require.ErrorIs(t,
			errs.NewInvalidTransitionError("DELIVERED", "SHIPPED", nil), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewInsufficientAmountError("1.00", "2.00"), errs.ErrInsufficientAmount)
		require.ErrorIs(t, errs.NewAlreadySettledError("INV-2025-000001"), errs.ErrAlreadySettled)
	})
}
