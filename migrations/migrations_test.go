package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(files, "*.sql")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"000001_create_product_table.up.sql",
		"000001_create_product_table.down.sql",
	}, names)

	up, err := fs.ReadFile(files, "000001_create_product_table.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS product")
}

func TestUp_InvalidURL(t *testing.T) {
	err := Up("mysql://nowhere")

	assert.ErrorContains(t, err, "failed to create migrate instance")
}
