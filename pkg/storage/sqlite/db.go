// SPDX-FileCopyrightText: Copyright 2025 Quayside, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package sqlite implements the storage interfaces on a single SQLite
// database using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/quayside/grantd/pkg/storage"
)

// Store implements storage.Store. Outside a transaction q is the *sql.DB;
// InTx hands callers a clone whose q is the live *sql.Tx.
type Store struct {
	db *sql.DB
	q  dbtx
	tx *sql.Tx
}

var _ storage.Store = (*Store)(nil)

// dbtx is the query surface shared by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// scanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// Open opens (creating if necessary) the database at path and applies all
// pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// modernc.org/sqlite serializes writers; a single connection avoids
	// SQLITE_BUSY churn and makes transaction semantics predictable.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	s.q = db
	return s, nil
}

// Clients implements storage.Store.
func (s *Store) Clients() storage.ClientStore { return &clientStore{s: s} }

// ClientConfigs implements storage.Store.
func (s *Store) ClientConfigs() storage.ClientConfigStore { return &clientConfigStore{s: s} }

// Users implements storage.Store.
func (s *Store) Users() storage.UserStore { return &userStore{s: s} }

// AuthorizationCodes implements storage.Store.
func (s *Store) AuthorizationCodes() storage.AuthorizationCodeStore {
	return &authorizationCodeStore{s: s}
}

// AccessTokens implements storage.Store.
func (s *Store) AccessTokens() storage.AccessTokenStore { return &accessTokenStore{s: s} }

// RefreshTokens implements storage.Store.
func (s *Store) RefreshTokens() storage.RefreshTokenStore { return &refreshTokenStore{s: s} }

// Audit implements storage.Store.
func (s *Store) Audit() storage.AuditStore { return &auditStore{s: s} }

// InTx implements storage.Store. Nested calls join the enclosing
// transaction instead of opening a second one, which SQLite would refuse.
func (s *Store) InTx(ctx context.Context, fn func(storage.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollback(tx)

	bound := &Store{db: s.db, q: tx, tx: tx}
	if err := fn(bound); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Ping verifies database connectivity. The health endpoint uses it as the
// readiness signal.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close implements storage.Store.
func (s *Store) Close() error {
	return s.db.Close()
}

// errEnvelope signals InTx to roll back when the envelope already carries
// the failure; the caller returns the envelope, not this error.
var errEnvelope = errors.New("operation failed")

// joinList renders a list column as a single space-separated value.
func joinList(values []string) string {
	return strings.Join(values, " ")
}

// splitList parses a space-separated list column. Empty input yields nil.
func splitList(s string) []string {
	return strings.Fields(s)
}

// nullableStamp converts an optional epoch stamp for binding.
func nullableStamp(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

// stampPtr converts a scanned nullable epoch stamp.
func stampPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	stamp := v.Int64
	return &stamp
}

// nullableText binds empty strings as NULL.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// boolToInt renders a boolean as the 0/1 integer the schema uses.
func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// isUniqueViolation checks for a SQLite UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}

// rollback rolls back tx, ignoring errors (tx may already be committed).
func rollback(tx *sql.Tx) { _ = tx.Rollback() }
