package sqlitemigrate_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-chargen/internal/pkg/sqlitemigrate"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApply_RunsOnce(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	migrations := fstest.MapFS{
		"001_first.sql":  {Data: []byte("-- +migrate Up\nCREATE TABLE things (id INTEGER PRIMARY KEY);\n-- +migrate Down\nDROP TABLE things;\n")},
		"002_second.sql": {Data: []byte("ALTER TABLE things ADD COLUMN label TEXT;")},
		"README.md":      {Data: []byte("not a migration")},
	}

	require.NoError(t, sqlitemigrate.Apply(ctx, db, migrations))
	require.NoError(t, sqlitemigrate.Apply(ctx, db, migrations), "second run must be a no-op")

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 2, count)

	_, err := db.Exec("INSERT INTO things (label) VALUES ('ok')")
	assert.NoError(t, err)
}

func TestApply_FailedMigrationIsNotRecorded(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	err := sqlitemigrate.Apply(ctx, db, fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE (;")},
	})
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Zero(t, count)
}

func TestExtractUp(t *testing.T) {
	assert.Equal(t, "\nSELECT 1;\n", sqlitemigrate.ExtractUp("-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;"))
	assert.Equal(t, "SELECT 3;", sqlitemigrate.ExtractUp("SELECT 3;"))
	assert.Equal(t, "\nSELECT 4;", sqlitemigrate.ExtractUp("-- +migrate Up\nSELECT 4;"))
}

func TestApply_NilDB(t *testing.T) {
	assert.Error(t, sqlitemigrate.Apply(context.Background(), nil, fstest.MapFS{}))
}
