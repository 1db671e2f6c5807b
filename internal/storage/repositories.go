// Package storage provides database models and repositories for mat configurations.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrNotFound = errors.New("record not found")
)

// DB represents a database connection interface.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Dialect selects the bind parameter style.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

const recordColumns = `id, mat_type, cell_structure, material_color, border_color, image_path, created_at, updated_at`

// ConfigurationRepository reads and writes mat configuration records.
type ConfigurationRepository struct {
	db      DB
	dialect Dialect
}

// NewConfigurationRepository creates a new configuration repository.
func NewConfigurationRepository(db DB, dialect Dialect) *ConfigurationRepository {
	return &ConfigurationRepository{db: db, dialect: dialect}
}

// Query returns records matching the filter in insertion order.
func (r *ConfigurationRepository) Query(ctx context.Context, f Filter) ([]Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	args := []interface{}{f.MatType, f.CellStructure}
	var b strings.Builder
	b.WriteString("SELECT " + recordColumns + " FROM mat_configurations WHERE mat_type = ")
	b.WriteString(r.dialect.placeholder(1))
	b.WriteString(" AND cell_structure = ")
	b.WriteString(r.dialect.placeholder(2))
	args = r.writeMembership(&b, "material_color", f.MaterialColors, args)
	args = r.writeMembership(&b, "border_color", f.BorderColors, args)
	b.WriteString(" ORDER BY created_at, id")

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query configurations: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// writeMembership appends "AND col = x" for one value, "AND col IN (...)" otherwise.
func (r *ConfigurationRepository) writeMembership(b *strings.Builder, column string, values []string, args []interface{}) []interface{} {
	b.WriteString(" AND " + column)
	if len(values) == 1 {
		args = append(args, values[0])
		b.WriteString(" = " + r.dialect.placeholder(len(args)))
		return args
	}
	b.WriteString(" IN (")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		args = append(args, v)
		b.WriteString(r.dialect.placeholder(len(args)))
	}
	b.WriteString(")")
	return args
}

// GetByID retrieves a record by ID.
func (r *ConfigurationRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	query := "SELECT " + recordColumns + " FROM mat_configurations WHERE id = " + r.dialect.placeholder(1)
	rec := &Record{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.MatType, &rec.CellStructure, &rec.MaterialColor,
		&rec.BorderColor, &rec.ImagePath, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

// Upsert inserts a record or overwrites the one with the same ID.
func (r *ConfigurationRepository) Upsert(ctx context.Context, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	p := r.dialect.placeholder
	query := fmt.Sprintf(`
		INSERT INTO mat_configurations (%s)
		VALUES (%s, %s, %s, %s, %s, %s, %s, %s)
		ON CONFLICT (id) DO UPDATE SET
			mat_type = excluded.mat_type,
			cell_structure = excluded.cell_structure,
			material_color = excluded.material_color,
			border_color = excluded.border_color,
			image_path = excluded.image_path,
			updated_at = excluded.updated_at
	`, recordColumns, p(1), p(2), p(3), p(4), p(5), p(6), p(7), p(8))

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.MatType, rec.CellStructure, rec.MaterialColor,
		rec.BorderColor, rec.ImagePath, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert configuration: %w", err)
	}
	return nil
}

// UpdateImagePath sets the image path of one record.
func (r *ConfigurationRepository) UpdateImagePath(ctx context.Context, id uuid.UUID, imagePath string) error {
	p := r.dialect.placeholder
	query := fmt.Sprintf(`UPDATE mat_configurations SET image_path = %s, updated_at = %s WHERE id = %s`, p(1), p(2), p(3))

	result, err := r.db.ExecContext(ctx, query, imagePath, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update image path: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPage returns up to limit records with IDs greater than after, ordered by ID.
// Pass uuid.Nil to start from the beginning.
func (r *ConfigurationRepository) ListPage(ctx context.Context, after uuid.UUID, limit int) ([]Record, error) {
	p := r.dialect.placeholder
	query := fmt.Sprintf(`SELECT %s FROM mat_configurations WHERE id > %s ORDER BY id LIMIT %s`, recordColumns, p(1), p(2))

	rows, err := r.db.QueryContext(ctx, query, after.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list configurations: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Count returns the number of stored records.
func (r *ConfigurationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mat_configurations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count configurations: %w", err)
	}
	return n, nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.MatType, &rec.CellStructure, &rec.MaterialColor,
			&rec.BorderColor, &rec.ImagePath, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
