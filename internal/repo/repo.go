package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Repo struct {
	DB *sql.DB
}

var ErrNotFound = errors.New("not found")

const keySyncToken = "sync_token"

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r Repo) conn(tx *sql.Tx) execer {
	if tx != nil {
		return tx
	}
	return r.DB
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SyncToken returns the last token the server issued, or ErrNotFound
// before the first sync.
func (r Repo) SyncToken(ctx context.Context) (string, error) {
	var token string
	err := r.DB.QueryRowContext(ctx, `SELECT value FROM sync_state WHERE key=?`, keySyncToken).Scan(&token)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return token, err
}

func (r Repo) SetSyncTokenTx(ctx context.Context, tx *sql.Tx, token string) error {
	_, err := r.conn(tx).ExecContext(ctx, `INSERT INTO sync_state(key,value,updated_at) VALUES (?,?,?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`, keySyncToken, token, now())
	return err
}

// Reset forgets the sync token and every cached snapshot so the next sync
// is a full one. Identifier mappings and the journal are kept.
func (r Repo) Reset(ctx context.Context) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM sync_state WHERE key=?`, keySyncToken); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots`); err != nil {
		return err
	}
	return tx.Commit()
}
