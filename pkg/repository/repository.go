// Package repository provides shared helpers for SQL-backed stores:
// generic row scanning, transaction wrapping, and driver error mapping.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// Scanner abstracts sql.Row and sql.Rows so scan functions can serve both.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanFunc reads a single record of type T from a database row.
type ScanFunc[T any] func(Scanner) (T, error)

// QueryOne executes a query expected to return a single row and scans it.
func QueryOne[T any](ctx context.Context, db *sql.DB, query string, args []any, scan ScanFunc[T]) (T, error) {
	return scan(db.QueryRowContext(ctx, query, args...))
}

// QueryMany executes a query and scans every returned row.
func QueryMany[T any](ctx context.Context, db *sql.DB, query string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}
	return results, rows.Err()
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, err
	}
	return result, nil
}

// ExecExpectOne executes a statement and fails with sql.ErrNoRows unless
// exactly one row was affected.
func ExecExpectOne(ctx context.Context, tx *sql.Tx, query string, args ...any) error {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// MapError translates driver-level errors into domain errors: sql.ErrNoRows
// becomes notFound and a unique violation becomes duplicate. All other errors
// pass through unchanged.
func MapError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return duplicate
	}
	return err
}
