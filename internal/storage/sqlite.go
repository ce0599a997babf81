package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// SQLiteStore keeps every collection as a JSON blob in a single kv table,
// mirroring the layout of the browser storage it replaced.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

func NewSQLiteStore(db *sql.DB, log zerolog.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteStore{db: db, log: log}, nil
}

func (s *SQLiteStore) Get(key string, out any) error {
	raw, ok, err := s.GetRaw(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if !decodeInto(raw, out) {
		// Corrupt blobs are recovered by keeping the caller's default.
		s.log.Warn().Str("key", key).Msg("corrupt value in store, using default")
	}
	return nil
}

func (s *SQLiteStore) Set(key string, v any) error {
	raw, err := encodeValue(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.SetRaw(key, raw)
}

func (s *SQLiteStore) GetRaw(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) SetRaw(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
