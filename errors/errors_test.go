package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppErrorThroughWrapping(t *testing.T) {
	appErr := NotFound("listingId", "missing")
	wrapped := fmt.Errorf("loading: %w", appErr)

	assert.Same(t, appErr, GetAppError(wrapped))
	assert.True(t, IsAppError(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeNotFound))
	assert.Nil(t, GetAppError(nil))
}

func TestFieldErrors(t *testing.T) {
	assert.Equal(t, []FieldError{{Field: "rating", Message: "bad"}}, Validation("rating", "bad").FieldErrors())
	assert.Nil(t, DBError("boom", nil).FieldErrors())

	multi := NewAppError(ErrCodeRequiredField, "required", nil)
	multi.Fields = []FieldError{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}
	assert.Len(t, multi.FieldErrors(), 2)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("driver error")
	err := Conflict("email", "taken", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "UNIQUENESS_CONFLICT")
}
