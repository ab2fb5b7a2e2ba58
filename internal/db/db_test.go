package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/braingym/internal/db"
)

func TestOpen_AppliesMigrations(t *testing.T) {
	d, err := db.Open("file::memory:")
	require.NoError(t, err)
	defer d.Close()

	require.NoError(t, d.Ready(context.Background()))

	var count int
	err = d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	for _, table := range []string{"kv_store", "session_results"} {
		var name string
		err := d.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	path := "file:" + t.TempDir() + "/scores.db"

	first, err := db.Open(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO kv_store (key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := db.Open(path)
	require.NoError(t, err)
	defer second.Close()

	var value string
	require.NoError(t, second.QueryRow(`SELECT value FROM kv_store WHERE key = 'k'`).Scan(&value))
	assert.Equal(t, "v", value)
}
