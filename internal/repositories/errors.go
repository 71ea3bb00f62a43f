package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrConnection is returned when the store cannot be reached
	ErrConnection = errors.New("database connection error")

	// ErrInsert is returned when the store rejects a write
	ErrInsert = errors.New("insert failed")

	// ErrNotConfigured is returned when a backend is built without credentials
	ErrNotConfigured = errors.New("tracking store not configured")

	// ErrUnsupported is returned for an unknown backend
	ErrUnsupported = errors.New("unsupported backend")
)

// RepositoryError represents a repository-specific error with additional context.
// When Message is set it is the store's own description of the failure and is
// returned unchanged by Error.
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Table or entity type
	Err     error  // Underlying error
	Message string // Store-reported message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		Err:    err,
	}
}

// InsertError creates an "insert" repository error carrying the store's message
func InsertError(entity, message string, err error) *RepositoryError {
	if err == nil {
		err = ErrInsert
	}
	if message == "" {
		message = err.Error()
	}
	return &RepositoryError{
		Op:      "insert",
		Entity:  entity,
		Err:     err,
		Message: message,
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "database",
		Err:     fmt.Errorf("%w: %v", ErrConnection, err),
		Message: fmt.Sprintf("database connection failed: %v", err),
	}
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}
