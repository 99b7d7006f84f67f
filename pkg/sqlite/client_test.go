package sqlite

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesMigrationsOnce(t *testing.T) {
	migrations := fstest.MapFS{
		"001_items.sql": {Data: []byte("CREATE TABLE items (id INTEGER PRIMARY KEY);")},
		"002_seed.sql":  {Data: []byte("INSERT INTO items (id) VALUES (1);")},
		"README.md":     {Data: []byte("ignored")},
	}
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path, migrations)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// 第二次開啟不會重複執行
	db, err = Open(path, migrations)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count))
	assert.Equal(t, 1, count)
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+migrationTable).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ", nil)
	require.Error(t, err)
}

func TestOpenFailsOnBadMigration(t *testing.T) {
	migrations := fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREATE TABLE")},
	}
	_, err := Open(filepath.Join(t.TempDir(), "test.db"), migrations)
	require.Error(t, err)
}
