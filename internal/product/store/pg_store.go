package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vistula/firstapi/internal/product/store/db"
)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
	q  *db.Queries
}

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{
		db: dbp,
		q:  db.New(dbp),
	}
}

// Save inserts or updates a product depending on whether it already has an id.
func (p *PgStore) Save(ctx context.Context, product db.Product) (db.Product, error) {
	if product.ID == 0 {
		created, err := p.q.Create(ctx, product.Name)
		if err != nil {
			return db.Product{}, fmt.Errorf("failed to create product: %w", err)
		}
		return created, nil
	}

	updated, err := p.q.Update(ctx, db.UpdateParams{ID: product.ID, Name: product.Name})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Product{}, ErrNoRows
		}
		return db.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

// FindByID retrieves a product by its unique identifier.
func (p *PgStore) FindByID(ctx context.Context, id int64) (db.Product, bool, error) {
	product, err := p.q.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Product{}, false, nil
		}
		return db.Product{}, false, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, true, nil
}

// FindAll retrieves all products.
// It returns a slice of products, which may be empty if no products exist.
func (p *PgStore) FindAll(ctx context.Context) ([]db.Product, error) {
	products, err := p.q.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	if products == nil {
		products = []db.Product{}
	}
	return products, nil
}

// DeleteByID removes a product by its unique identifier.
func (p *PgStore) DeleteByID(ctx context.Context, id int64) error {
	if _, err := p.q.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product by ID: %w", err)
	}
	return nil
}

// Ping reports whether the database is reachable.
func (p *PgStore) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
