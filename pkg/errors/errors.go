package errors

import (
	"fmt"
)

// StoreError reports a failure in a preference persistence backend.
type StoreError struct {
	Backend string
	Key     string
	Err     error
}

// NewStoreError constructs a StoreError.
func NewStoreError(backend, key string, err error) error {
	return &StoreError{Backend: backend, Key: key, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("store error [%s] key %q: %v", e.Backend, e.Key, e.Err)
	}
	return fmt.Sprintf("store error [%s]: %v", e.Backend, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SignalError reports a failure while reading or watching an appearance source.
type SignalError struct {
	Source string
	Err    error
}

// NewSignalError constructs a SignalError.
func NewSignalError(source string, err error) error {
	return &SignalError{Source: source, Err: err}
}

func (e *SignalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("signal error [%s]: %v", e.Source, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SignalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError represents a configuration file that could not be loaded.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ConfigError{Path: path, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("config error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or argument validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
