package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := NewInvalidValue("bad value", "abc123")

	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.False(t, errors.Is(err, ErrInvalidPadValue))

	wrapped := fmt.Errorf("increment: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidValue))
	assert.Equal(t, CodeInvalidValue, CodeOf(wrapped))
}

func TestAppError_ErrorString(t *testing.T) {
	err := NewInvalidType("bogus")
	assert.Equal(t, "INVALID_TYPE: Invalid type: bogus", err.Error())

	cause := errors.New("boom")
	err = NewInvalidOption("leftPadLength", "must be a number").WithCause(cause)
	assert.Equal(t, "INVALID_OPTION: must be a number (caused by: boom)", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppError_WithDetail(t *testing.T) {
	err := NewInvalidPadValue("aa").WithDetail("leftPadLength", 4)

	assert.Equal(t, "aa", err.Details["leftPadValue"])
	assert.Equal(t, 4, err.Details["leftPadLength"])
}

func TestAsAppError(t *testing.T) {
	_, ok := AsAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, "", CodeOf(errors.New("plain")))

	appErr, ok := AsAppError(NewTypeMismatch("integer", "3"))
	assert.True(t, ok)
	assert.Equal(t, CodeTypeMismatch, appErr.Code)
}
