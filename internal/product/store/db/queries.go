package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

type statements struct {
	create   string
	update   string
	findByID string
	findAll  string
	delete   string
}

func buildStatements(t Table) statements {
	cols := strings.Join(t.Columns(), ", ")
	return statements{
		create: fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1) RETURNING %s",
			t.Name, t.NameColumn, cols),
		update: fmt.Sprintf("UPDATE %s SET %s = $2 WHERE %s = $1 RETURNING %s",
			t.Name, t.NameColumn, t.IDColumn, cols),
		findByID: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
			cols, t.Name, t.IDColumn),
		findAll: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
			cols, t.Name, t.IDColumn),
		delete: fmt.Sprintf("DELETE FROM %s WHERE %s = $1",
			t.Name, t.IDColumn),
	}
}

var productStatements = buildStatements(ProductTable)

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name)
	return p, err
}

// Create inserts a product; the database assigns its id.
func (q *Queries) Create(ctx context.Context, name string) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, productStatements.create, name))
}

type UpdateParams struct {
	ID   int64
	Name string
}

// Update renames a product. Returns pgx.ErrNoRows when the id does not exist.
func (q *Queries) Update(ctx context.Context, arg UpdateParams) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, productStatements.update, arg.ID, arg.Name))
}

// FindByID returns pgx.ErrNoRows when the id does not exist.
func (q *Queries) FindByID(ctx context.Context, id int64) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, productStatements.findByID, id))
}

func (q *Queries) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, productStatements.findAll)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Product, error) {
		return scanProduct(row)
	})
}

// Delete returns the number of deleted rows.
func (q *Queries) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, productStatements.delete, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
