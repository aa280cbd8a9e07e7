// Package migrations owns the embedded schema for the activity record
// database. Each *.up.sql file is one forward-only migration; applied
// versions are recorded in a schema_migrations ledger so reopening a
// database only runs what is new. Rollbacks are not supported.
package migrations

import (
	"database/sql"
	"embed"
	"sort"
	"strconv"
	"strings"

	"github.com/shibashis07/time-logger/internal/errors"
)

//go:embed *.up.sql
var schemaFS embed.FS

// Apply brings the database schema up to date.
func Apply(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(query); err != nil {
		return errors.NewPersistenceError("create schema_migrations table", err)
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	names, err := schemaFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		version, ok := fileVersion(name)
		if !ok || applied[version] {
			continue
		}
		if err := applyOne(db, version, name); err != nil {
			return err
		}
	}

	return nil
}

// schemaFiles lists the embedded migration files. The zero-padded version
// prefix makes lexical order equal version order.
func schemaFiles() ([]string, error) {
	entries, err := schemaFS.ReadDir(".")
	if err != nil {
		return nil, errors.NewPersistenceError("read embedded schema", err)
	}

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// fileVersion parses the numeric prefix of a migration file name,
// e.g. 000001_create_activity_records.up.sql carries version 1.
func fileVersion(name string) (int, bool) {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return 0, false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, false
	}
	return version, true
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, errors.NewPersistenceError("read schema_migrations", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, errors.NewPersistenceError("scan schema_migrations", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// applyOne runs one migration and records its version in the same
// transaction, so a failed migration leaves the ledger untouched.
func applyOne(db *sql.DB, version int, name string) error {
	statements, err := schemaFS.ReadFile(name)
	if err != nil {
		return errors.NewPersistenceError("read schema migration "+name, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.NewPersistenceError("begin schema migration", err)
	}

	if _, err := tx.Exec(string(statements)); err != nil {
		tx.Rollback()
		return errors.NewPersistenceError("apply schema migration "+name, err)
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		tx.Rollback()
		return errors.NewPersistenceError("record schema migration "+name, err)
	}

	return tx.Commit()
}
