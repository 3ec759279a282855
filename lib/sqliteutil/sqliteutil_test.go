package sqliteutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `
CREATE TABLE IF NOT EXISTS things (
    id INTEGER NOT NULL PRIMARY KEY,
    name TEXT NOT NULL
);`

func TestOpenDBCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := OpenDB(testSchema, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO things (id, name) VALUES (1, 'a')`)
	require.NoError(t, err)

	// reopening with the same schema is fine
	db2, err := OpenDB(testSchema, path)
	require.NoError(t, err)
	defer db2.Close()

	var count int
	err = db2.QueryRow(`SELECT COUNT(*) FROM things`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestOpenDBRequiresPath(t *testing.T) {
	_, err := OpenDB(testSchema, "")
	require.Error(t, err)
}
