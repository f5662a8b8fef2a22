package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS sessions (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);`

// OpenSQLite opens (creating if needed) the session database at path and
// applies the schema.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return db, nil
}

// SQLiteCache persists values as JSON blobs in a single key-value table, so
// one database file can back the form store and the calculator store at
// once (they share it through distinct namespaces).
type SQLiteCache[S any] struct {
	db *sql.DB
}

func NewSQLiteCache[S any](db *sql.DB) *SQLiteCache[S] {
	return &SQLiteCache[S]{db: db}
}

func (c *SQLiteCache[S]) Set(ctx context.Context, key string, val S) error {
	raw, err := sonic.Marshal(val)
	if err != nil {
		return fmt.Errorf("encode session %q: %w", key, err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO sessions (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')`,
		key, raw)
	if err != nil {
		return fmt.Errorf("save session %q: %w", key, err)
	}
	return nil
}

// Get returns a miss for rows that fail to decode: foreign or corrupt data
// must never surface as an error to the form engine.
func (c *SQLiteCache[S]) Get(ctx context.Context, key string) (S, bool, error) {
	var zero S
	var raw []byte
	err := c.db.QueryRowContext(ctx, `SELECT value FROM sessions WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("load session %q: %w", key, err)
	}
	var val S
	if err := sonic.Unmarshal(raw, &val); err != nil {
		return zero, false, nil
	}
	return val, true, nil
}

func (c *SQLiteCache[S]) Del(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM sessions WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear session %q: %w", key, err)
	}
	return nil
}
