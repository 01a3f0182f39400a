// Package errors provides a lightweight structured error type (ConfigureError)
// for category-based classification of configure failures and their CLI exit codes.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a configure error for classification
type ErrorCategory string

const (
	// User-facing option and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External tool errors
	CategoryInvocation ErrorCategory = "invocation"

	// Local environment errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ConfigureError is a structured error with category, severity and context
type ConfigureError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ConfigureError
type ContextFields map[string]any

// Error implements the error interface
func (e *ConfigureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ConfigureError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ConfigureError) WithContext(key string, value any) *ConfigureError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ConfigureError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ConfigureError {
	return &ConfigureError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ConfigureError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ConfigureError {
	return &ConfigureError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the first ConfigureError in err's chain.
func As(err error) (*ConfigureError, bool) {
	var ce *ConfigureError
	if stdErrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ce, ok := As(err); ok {
		return ce.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a ConfigureError
func GetCategory(err error) ErrorCategory {
	if ce, ok := As(err); ok {
		return ce.Category
	}
	return CategoryInternal
}
