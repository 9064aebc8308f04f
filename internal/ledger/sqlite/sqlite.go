// Package sqlite stores the ledger in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/crimson-sun/lionshare/internal/ledger"
	"github.com/crimson-sun/lionshare/internal/model"
)

const schema = `CREATE TABLE IF NOT EXISTS ledger (
	pos     INTEGER PRIMARY KEY,
	name    TEXT    NOT NULL UNIQUE,
	value   INTEGER NOT NULL,
	flagged INTEGER NOT NULL DEFAULT 0
)`

func init() {
	ledger.Register("sqlite", func(path string) (ledger.Store, error) {
		return Open(path)
	})
}

// Store is a SQLite-backed ledger.Store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	for _, stmt := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		schema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: init %q: %w", stmt, err)
		}
	}
	return &Store{db: db}, nil
}

// Load returns every row ordered by position.
func (s *Store) Load(ctx context.Context) ([]model.Row, error) {
	rs, err := s.db.QueryContext(ctx, `SELECT name, value, flagged FROM ledger ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load: %w", err)
	}
	defer rs.Close()

	var rows []model.Row
	for rs.Next() {
		var r model.Row
		if err := rs.Scan(&r.Name, &r.Value, &r.Flagged); err != nil {
			return nil, fmt.Errorf("sqlite: load: %w", err)
		}
		rows = append(rows, r)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: load: %w", err)
	}
	return rows, nil
}

// Save replaces the whole ledger in one transaction.
func (s *Store) Save(ctx context.Context, rows []model.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM ledger`); err != nil {
		return fmt.Errorf("sqlite: save: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO ledger (pos, name, value, flagged) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite: save: %w", err)
	}
	defer stmt.Close()
	for i, r := range rows {
		if _, err := stmt.ExecContext(ctx, i, r.Name, r.Value, r.Flagged); err != nil {
			return fmt.Errorf("sqlite: save %q: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: save: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
