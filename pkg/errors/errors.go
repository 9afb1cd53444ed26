// Package errors provides custom error types for the bookstore system.
// These errors let callers tell a missing book apart from a violated
// purchase rule or a failed write of the identifier counters.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are the standard library functions, re-exported so callers
// need only this package.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the bookstore system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock indicates a physical book has fewer copies than requested
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity indicates a quantity the book kind does not accept
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrNotForSale indicates an attempt to buy a book that is never sold
	ErrNotForSale = errors.New("not for sale")

	// ErrCounterExhausted indicates a prefix has no identifiers left to issue
	ErrCounterExhausted = errors.New("counter exhausted")

	// ErrStorage indicates that durable storage could not be read or written
	ErrStorage = errors.New("storage failure")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// PurchaseError represents a purchase rejected by a book's sale rules.
// Reason is one of ErrInsufficientStock, ErrInvalidQuantity or ErrNotForSale.
type PurchaseError struct {
	BookID    string
	Title     string
	Quantity  int
	Available int
	Reason    error
}

// Error implements the error interface
func (e *PurchaseError) Error() string {
	switch e.Reason {
	case ErrInsufficientStock:
		return fmt.Sprintf("cannot buy %d of %q (%s): only %d available", e.Quantity, e.Title, e.BookID, e.Available)
	case ErrInvalidQuantity:
		if e.Quantity < 1 {
			return fmt.Sprintf("cannot buy %d of %q (%s): quantity must be at least 1", e.Quantity, e.Title, e.BookID)
		}
		return fmt.Sprintf("cannot buy %d of %q (%s): only one copy may be purchased per transaction", e.Quantity, e.Title, e.BookID)
	case ErrNotForSale:
		return fmt.Sprintf("%q (%s) is a demo book and not for sale", e.Title, e.BookID)
	default:
		return fmt.Sprintf("cannot buy %d of %q (%s): %v", e.Quantity, e.Title, e.BookID, e.Reason)
	}
}

// Unwrap implements errors.Unwrap
func (e *PurchaseError) Unwrap() error {
	return e.Reason
}

// NewPurchaseError creates a new PurchaseError
func NewPurchaseError(bookID, title string, quantity, available int, reason error) *PurchaseError {
	return &PurchaseError{
		BookID:    bookID,
		Title:     title,
		Quantity:  quantity,
		Available: available,
		Reason:    reason,
	}
}

// StorageError represents an error while reading or writing durable state
type StorageError struct {
	Operation string // "read", "write", "rename", "mkdir"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("storage error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("storage error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError creates a new StorageError
func NewStorageError(operation, path string, err error) *StorageError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StorageError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "create", "load", "open", "issue"
	Resource  string // "book", "registry", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInsufficientStock checks if a purchase failed for lack of stock
func IsInsufficientStock(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsInvalidQuantity checks if a purchase failed because of its quantity
func IsInvalidQuantity(err error) bool {
	return errors.Is(err, ErrInvalidQuantity)
}

// IsNotForSale checks if a purchase targeted a book that is not sold
func IsNotForSale(err error) bool {
	return errors.Is(err, ErrNotForSale)
}

// IsPurchaseError checks if an error is any purchase rule violation
func IsPurchaseError(err error) bool {
	var pe *PurchaseError
	return errors.As(err, &pe)
}

// IsCounterExhausted checks if a prefix ran out of identifiers
func IsCounterExhausted(err error) bool {
	return errors.Is(err, ErrCounterExhausted)
}

// IsStorage checks if an error is a storage failure
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// Helper wrapping functions for common patterns

// WrapStorage wraps an error as a StorageError
func WrapStorage(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewStorageError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}
