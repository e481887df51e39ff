package impl_sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS banks (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id      TEXT PRIMARY KEY,
	bank_id TEXT NOT NULL REFERENCES banks(id),
	name    TEXT NOT NULL,
	balance TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transfers (
	seq                    INTEGER PRIMARY KEY AUTOINCREMENT,
	id                     TEXT NOT NULL UNIQUE,
	kind                   TEXT NOT NULL,
	amount                 TEXT NOT NULL,
	info                   TEXT NOT NULL,
	source_account_id      TEXT REFERENCES accounts(id),
	destination_account_id TEXT REFERENCES accounts(id),
	source_bank_id         TEXT REFERENCES banks(id),
	destination_bank_id    TEXT REFERENCES banks(id),
	created_at             INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS transfers_source_idx ON transfers (source_account_id, created_at);
CREATE INDEX IF NOT EXISTS transfers_destination_idx ON transfers (destination_account_id, created_at);
`

// Store is the durable ledger. Every unit of work is an IMMEDIATE sqlite
// transaction, so writers are serialized by the database as well.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and bootstraps the schema.
// ":memory:" yields a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	memory := path == ":memory:"

	q := url.Values{}
	q.Set("_txlock", "immediate")
	q.Set("_foreign_keys", "on")
	q.Set("_busy_timeout", "5000")
	if !memory {
		q.Set("_journal_mode", "WAL")
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if memory {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Banks() *BankRepository { return &BankRepository{s: s} }

func (s *Store) Accounts() *AccountRepository { return &AccountRepository{s: s} }

func (s *Store) Transfers() *TransferRepository { return &TransferRepository{s: s} }

type txKey struct{}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// q returns the transaction carried by ctx, or the pool.
func (s *Store) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return s.db
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", mapError(err))
	}

	return nil
}

// mapError translates constraint violations into the persistence sentinels.
func mapError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		return fmt.Errorf("%w: %v", port_persistence.ErrAlreadyExists, err)
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %v", port_persistence.ErrInvalidReference, err)
	}

	return err
}
