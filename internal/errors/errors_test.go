package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("interest percentage out of range", "percentage=250")

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, "[VALIDATION_ERROR] interest percentage out of range", err.Error())
	assert.False(t, err.Timestamp.IsZero())
}

func TestNewDataIntegrityError(t *testing.T) {
	cause := errors.New("duplicate id 7")
	err := NewDataIntegrityError("catalog failed validation", cause)

	assert.Equal(t, CategoryDataIntegrity, err.Category)
	assert.Equal(t, "[DATA_INTEGRITY_ERROR] catalog failed validation", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("catalog file missing", nil)

	assert.Equal(t, CategoryNotFound, err.Category)
	assert.Equal(t, "[NOT_FOUND] catalog file missing", err.Error())
}

func TestNewInternalError(t *testing.T) {
	cause := errors.New("disk on fire")
	err := NewInternalError("failed to read catalog", cause)

	assert.Equal(t, CategoryInternal, err.Category)
	assert.Equal(t, "[INTERNAL_ERROR] Internal error", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestNewConfigurationError(t *testing.T) {
	cause := errors.New("flag parse failure")
	err := NewConfigurationError("unknown age group \"elder\"", cause)

	assert.Equal(t, CategoryConfiguration, err.Category)
	assert.Contains(t, err.Error(), "unknown age group")
	assert.ErrorIs(t, err, cause)
	assert.False(t, err.Timestamp.IsZero())
}

func TestToAppError(t *testing.T) {
	assert.Nil(t, ToAppError(nil))

	original := NewValidationError("already typed")
	assert.Same(t, original, ToAppError(original))

	converted := ToAppError(errors.New("plain"))
	require.NotNil(t, converted)
	assert.Equal(t, CategoryInternal, converted.Category)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	cause := errors.New("underlying")
	wrapped := WrapError(cause, "loading catalog %q", "careers.json")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, `loading catalog "careers.json": underlying`, fmt.Sprint(wrapped))
}

func TestNewValidationErrorWithMap(t *testing.T) {
	err := NewValidationErrorWithMap(map[string]string{
		"ageGroup":   "unknown age group",
		"experience": "unknown experience level",
	})

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, "[VALIDATION_ERROR] Multiple validation errors", err.Error())
}
