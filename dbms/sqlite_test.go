package dbms

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `CREATE TABLE stations (name TEXT, opened INTEGER)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO stations (name, opened) VALUES (?, ?), (?, ?)`,
		"Leeds", 1846, "York", 1877)
	require.NoError(t, err)

	var count int
	query := AddQueryCondition(`SELECT COUNT(*) FROM stations`, "", Eq("name", "Leeds"))
	require.NoError(t, db.QueryRowContext(ctx, query).Scan(&count))
	assert.Equal(t, 1, count)

	// The database file exists on disk.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
