package domain

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every typed error below unwraps to exactly one of these.
var (
	ErrNotFound          = errors.New("product not found")
	ErrOutOfStock        = errors.New("product out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateName     = errors.New("duplicate product name")
	ErrValidation        = errors.New("invalid input")
)

// NotFoundError is returned for a missing id, an unknown id, or a stored
// entry without a name.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "Product not found: ID is missing."
	}
	return "Product not found: " + e.ID
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type OutOfStockError struct {
	Name string
}

func (e *OutOfStockError) Error() string {
	return "Product out of stock: " + e.Name
}

func (e *OutOfStockError) Unwrap() error { return ErrOutOfStock }

// InsufficientStockError reports a request larger than the positive stock
// on hand.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Requested: %d, Available: %d", e.Name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "Item already exists: " + e.Name
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// ValidationError is a malformed value supplied by the caller. Message is
// shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
