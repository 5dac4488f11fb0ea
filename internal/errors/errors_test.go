package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "with cause",
			err:      NewParsingError("failed to read sheet", fmt.Errorf("io failure")),
			expected: "[PARSING] failed to read sheet: io failure",
		},
		{
			name:     "without cause",
			err:      NewValidationError("weight sum mismatch"),
			expected: "[VALIDATION] weight sum mismatch",
		},
		{
			name:     "not found",
			err:      NewNotFoundError("sheet missing", nil),
			expected: "[NOT_FOUND] sheet missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NewStorageError("write failed", cause)

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewConfigError("bad config", nil).
		WithContext("file", "config.yaml").
		WithContext("field", "logging.level")

	assert.Equal(t, "config.yaml", err.Context["file"])
	assert.Equal(t, "logging.level", err.Context["field"])
}
