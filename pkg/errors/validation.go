package errors

import "fmt"

// ValidationError reports an invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrorCollector accumulates field errors of a request.
type ValidationErrorCollector struct {
	errors []ValidationError
}

// NewValidationErrorCollector returns an empty collector.
func NewValidationErrorCollector() *ValidationErrorCollector {
	return &ValidationErrorCollector{}
}

// Add records an error for field.
func (c *ValidationErrorCollector) Add(field, message string) {
	c.errors = append(c.errors, ValidationError{Field: field, Message: message})
}

// HasError reports whether anything was recorded.
func (c *ValidationErrorCollector) HasError() bool {
	return len(c.errors) > 0
}

// Errors returns the recorded errors.
func (c *ValidationErrorCollector) Errors() []ValidationError {
	return c.errors
}

func (c *ValidationErrorCollector) Error() string {
	if len(c.errors) == 0 {
		return ""
	}
	return c.errors[0].Error()
}
