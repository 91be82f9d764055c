package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkuleshov/emgtrack/internal/storage/migrations"
	"github.com/pressly/goose/v3"
)

// Open opens the local SQLite database at dsn and brings its schema up to
// date. The database backs the key-value store and the secure session slot.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
