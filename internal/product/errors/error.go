// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")

// NotFoundError reports that no product is stored under ID.
type NotFoundError struct {
	ID int64
}

// NotFound returns the error raised when id does not resolve to a stored product.
func NotFound(id int64) *NotFoundError {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product not found with id: %d", e.ID)
}

// Is lets errors.Is(err, ErrProductNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
