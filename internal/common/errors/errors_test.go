package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Unit Tests
// ==========================

func TestStandardError_HTTPStatus(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeMessageTooShort, http.StatusBadRequest},
		{ErrCodeMalformedBody, http.StatusBadRequest},
		{ErrCodeStoreInsertFailed, http.StatusInternalServerError},
		{ErrCodeStoreReadFailed, http.StatusInternalServerError},
		{ErrCodeDocumentMappingFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := &StandardError{Code: tt.code}
			assert.Equal(t, tt.status, err.HTTPStatus())
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	t.Run("validation error carries field detail", func(t *testing.T) {
		err := NewValidationFailedError("title: required field missing", []string{"title"})
		assert.Equal(t, ErrCodeValidationFailed, err.Code)
		assert.Contains(t, err.Details, "title")
		assert.NotNil(t, err.Metadata["fields"])
		assert.False(t, err.Timestamp.IsZero())
	})

	t.Run("store errors carry collection and cause", func(t *testing.T) {
		cause := errors.New("no reachable servers")

		insertErr := NewStoreInsertFailedError("inquiry", cause)
		assert.Contains(t, insertErr.Details, "inquiry")
		assert.Contains(t, insertErr.Details, "no reachable servers")

		readErr := NewStoreReadFailedError("service", cause)
		assert.Contains(t, readErr.Details, "service")
	})

	t.Run("error string names the code", func(t *testing.T) {
		err := NewMessageTooShortError()
		assert.Contains(t, err.Error(), "MESSAGE_TOO_SHORT")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 50))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "trunc", Truncate("truncated away", 5))
	assert.Equal(t, "", Truncate("", 5))
}
