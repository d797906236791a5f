// Package errors provides standardized error handling for the content API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMessageTooShort  ErrorCode = "MESSAGE_TOO_SHORT"
	ErrCodeMalformedBody    ErrorCode = "MALFORMED_BODY"

	ErrCodeStoreInsertFailed ErrorCode = "STORE_INSERT_FAILED"
	ErrCodeStoreReadFailed   ErrorCode = "STORE_READ_FAILED"

	ErrCodeDocumentMappingFailed ErrorCode = "DOCUMENT_MAPPING_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to the status the response layer should use.
// Validation failures are client errors; store and mapping failures are
// server-side and must not be hidden behind a 4xx.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidationFailed, ErrCodeMessageTooShort, ErrCodeMalformedBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a client error carrying field-level detail.
func NewValidationFailedError(details string, fieldErrors interface{}) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Input failed schema validation",
		Details:   details,
		Metadata:  map[string]interface{}{"fields": fieldErrors},
		Timestamp: time.Now().UTC(),
	}
}

// NewMessageTooShortError creates the inquiry-specific minimum-length error.
func NewMessageTooShortError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMessageTooShort,
		Message:   "Message too short",
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedBodyError creates a client error for unparseable request bodies.
func NewMalformedBodyError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedBody,
		Message:   "Request body is not valid JSON",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreInsertFailedError creates a server error carrying the adapter message.
func NewStoreInsertFailedError(collection string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreInsertFailed,
		Message:   "Document store insert failed",
		Details:   fmt.Sprintf("collection: %s, error: %s", collection, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreReadFailedError creates a server error carrying the adapter message.
func NewStoreReadFailedError(collection string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreReadFailed,
		Message:   "Document store read failed",
		Details:   fmt.Sprintf("collection: %s, error: %s", collection, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewDocumentMappingFailedError signals a stored document that no longer
// satisfies its schema. Surfaced distinctly so data drift is never coerced.
func NewDocumentMappingFailedError(collection, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentMappingFailed,
		Message:   "Stored document does not match its schema",
		Details:   fmt.Sprintf("collection: %s, error: %s", collection, details),
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// Truncate shortens diagnostic text for status reporting.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
