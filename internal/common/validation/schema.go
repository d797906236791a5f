package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType enumerates the value types a record field may hold.
type FieldType string

const (
	TypeString     FieldType = "string"
	TypeStringList FieldType = "stringList"
)

// Format is an optional syntactic constraint on string fields.
type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
)

// Field declares one record field and its constraints.
type Field struct {
	Name             string
	Type             FieldType
	Required         bool
	Format           Format
	MinTrimmedLength int
}

// RecordSchema declares the shape of one record kind. Name doubles as the
// store collection name (lowercase singular kind).
type RecordSchema struct {
	Name   string
	Fields []Field
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Validate checks an untyped input mapping against the schema with detailed
// errors. Pure: the input is never modified. Keys not declared by the schema
// are ignored.
func (s RecordSchema) Validate(input map[string]interface{}) *ValidationResult {
	errors := []ValidationError{}

	for _, field := range s.Fields {
		value, exists := input[field.Name]
		if !exists || value == nil {
			if field.Required {
				errors = append(errors, ValidationError{
					Field:   field.Name,
					Message: "required field missing",
					Code:    "REQUIRED_FIELD_MISSING",
				})
			}
			continue
		}

		if fieldErrors := validateField(field, value); len(fieldErrors) > 0 {
			errors = append(errors, fieldErrors...)
		}
	}

	return &ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

func validateField(field Field, value interface{}) []ValidationError {
	errors := []ValidationError{}

	switch field.Type {
	case TypeString:
		strVal, ok := value.(string)
		if !ok {
			return append(errors, ValidationError{
				Field:   field.Name,
				Message: fmt.Sprintf("expected string, got %T", value),
				Code:    "INVALID_TYPE",
			})
		}

		trimmed := strings.TrimSpace(strVal)

		if field.Required && trimmed == "" {
			return append(errors, ValidationError{
				Field:   field.Name,
				Message: "required field is empty",
				Code:    "REQUIRED_FIELD_EMPTY",
			})
		}

		// Trimming happens before the length check.
		if field.MinTrimmedLength > 0 && len(trimmed) < field.MinTrimmedLength {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: fmt.Sprintf("value must be at least %d characters after trimming", field.MinTrimmedLength),
				Code:    "MIN_LENGTH_VIOLATION",
			})
		}

		if field.Format == FormatEmail && trimmed != "" && !ValidateEmail(trimmed) {
			errors = append(errors, ValidationError{
				Field:   field.Name,
				Message: "value is not a valid email address",
				Code:    "INVALID_EMAIL_FORMAT",
			})
		}

	case TypeStringList:
		items, err := toStringListItems(value)
		if err != nil {
			return append(errors, ValidationError{
				Field:   field.Name,
				Message: err.Error(),
				Code:    "INVALID_TYPE",
			})
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("%s[%d]", field.Name, i),
					Message: fmt.Sprintf("expected string, got %T", item),
					Code:    "INVALID_TYPE",
				})
			}
		}
	}

	return errors
}

// toStringListItems accepts both the generic JSON array shape and an already
// typed string slice, which stored documents may decode into.
func toStringListItems(value interface{}) ([]interface{}, error) {
	switch arr := value.(type) {
	case []interface{}:
		return arr, nil
	case []string:
		items := make([]interface{}, len(arr))
		for i, s := range arr {
			items[i] = s
		}
		return items, nil
	default:
		return nil, fmt.Errorf("expected array, got %T", value)
	}
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+"[") {
			return true
		}
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail validates email format
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
