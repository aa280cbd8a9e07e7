package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyCreatesSchema(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Apply(db))

	_, err := db.Exec(`INSERT INTO activity_records
		(id, activity, start_time, end_time, duration_minutes, date, created_at)
		VALUES ('rec-1', 'Reading', '09:00', '09:30', 30, '2025-03-14', '2025-03-14T09:30:00Z')`)
	assert.NoError(t, err)

	var version int
	require.NoError(t, db.QueryRow("SELECT version FROM schema_migrations").Scan(&version))
	assert.Equal(t, 1, version)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Apply(db))
	require.NoError(t, Apply(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestFileVersion(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		version int
		ok      bool
	}{
		{name: "padded prefix", file: "000001_create_activity_records.up.sql", version: 1, ok: true},
		{name: "later version", file: "000012_add_notes.up.sql", version: 12, ok: true},
		{name: "no separator", file: "schema.sql", ok: false},
		{name: "non-numeric prefix", file: "base_schema.up.sql", ok: false},
		{name: "zero version", file: "000000_reserved.up.sql", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, ok := fileVersion(tt.file)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.version, version)
		})
	}
}
