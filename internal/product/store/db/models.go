package db

// Product is a row of the product table. ID is zero until the row is persisted.
type Product struct {
	ID   int64
	Name string
}

// Table describes where a Product lives: the table name and the column behind each field.
type Table struct {
	Name       string
	IDColumn   string
	NameColumn string
}

// ProductTable is the mapping every product statement is built from.
var ProductTable = Table{
	Name:       "product",
	IDColumn:   "id",
	NameColumn: "name",
}

// Columns lists the columns in Product field order.
func (t Table) Columns() []string {
	return []string{t.IDColumn, t.NameColumn}
}
