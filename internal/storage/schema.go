package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var schemaFS embed.FS

// applySchema brings the snapshot tables up to date. Every script is
// idempotent, so reopening an existing archive passes through unchanged.
func applySchema(db *sql.DB) error {
	return runSchemaScripts(db, ".up.sql")
}

// dropSchema tears the snapshot tables back down.
func dropSchema(db *sql.DB) error {
	return runSchemaScripts(db, ".down.sql")
}

func runSchemaScripts(db *sql.DB, suffix string) error {
	names, err := fs.Glob(schemaFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("storage: list schema scripts: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		script, readErr := schemaFS.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("storage: read schema script %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(script)); execErr != nil {
			return fmt.Errorf("storage: apply schema script %s: %w", name, execErr)
		}
	}
	return nil
}
