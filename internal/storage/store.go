package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Open connects to the record database. Supported drivers are "sqlite" (or
// "sqlite3") and "postgres". SQLite connections are limited to a single writer.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, Dialect, error) {
	var dialect Dialect
	switch driver {
	case "sqlite", "sqlite3":
		driver, dialect = "sqlite3", DialectSQLite
	case "postgres":
		dialect = DialectPostgres
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}

	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			db.Close()
			return nil, "", fmt.Errorf("failed to apply pragmas: %w", err)
		}
	}

	return db, dialect, nil
}

// Migrate creates the configuration table and its lookup index if missing.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
