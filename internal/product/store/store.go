// Package store provides an interface for product storage operations.
package store

import (
	"context"
	"errors"

	"github.com/vistula/firstapi/internal/product/store/db"
)

// ErrNoRows is returned by Save when the product being updated no longer exists.
var ErrNoRows = errors.New("no product row to update")

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// Save inserts a product whose ID is zero, letting storage assign the id,
	// and otherwise overwrites the name of the product with that ID.
	// Returns the stored product.
	Save(ctx context.Context, product db.Product) (db.Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// The boolean is false if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (db.Product, bool, error)

	// FindAll returns all products ordered by id.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]db.Product, error)

	// DeleteByID removes a product by its ID. Deleting a missing product is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
