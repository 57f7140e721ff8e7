package errs_test

import (
	"errors"
	"testing"

	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(123))

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, int64(123), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("accountId", int64(7), cause)

		assert.Equal(t, "accountId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: accountId, ID is: 7 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("classifiable with errors.Is", func(t *testing.T) {
		var err error = errs.NewObjectNotFoundError("agentId", int64(9))
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.NotErrorIs(t, err, errs.ErrPermissionDenied)
	})
}

func TestPermissionDeniedError(t *testing.T) {
	err := errs.NewPermissionDeniedError("sender", int64(42))

	assert.Equal(t, "sender", err.ActorName)
	assert.Equal(t, int64(42), err.ObjectID)
	assert.Equal(t, "permission denied: sender has no authority over 42", err.Error())
	assert.Equal(t, errs.ErrPermissionDenied, err.Unwrap())
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("Created", "InProgress")

	assert.Equal(t, "Created", err.From)
	assert.Equal(t, "InProgress", err.To)
	assert.Equal(t, "invalid status transition: Created->InProgress", err.Error())
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestValidationFailedError(t *testing.T) {
	err := errs.NewValidationFailedError("receiver info error")

	assert.Equal(t, "receiver info error", err.Message)
	assert.Equal(t, "validation failed: receiver info error", err.Error())
	assert.ErrorIs(t, err, errs.ErrValidationFailed)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("99 is not a valid status")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: 99 is not a valid status)", err.Error())
	})

	t.Run("sanitize flattens newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("hello\nworld")
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("receiver name")

		assert.Equal(t, "receiver name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: receiver name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("receiver name", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: receiver name (cause: missing required field)", err.Error())
	})
}
