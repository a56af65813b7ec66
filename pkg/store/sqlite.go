package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every key as a row of a SQLite database.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens the database at path and initializes the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Writers are serialized on one connection
	conn.SetMaxOpenConns(1)

	s := &SQLiteStore{conn: conn}
	if err := s.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS local_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Get decodes the value stored under key into value.
func (s *SQLiteStore) Get(key string, value any) (bool, error) {
	var raw string
	err := s.conn.QueryRow(`SELECT value FROM local_store WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query key %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), value); err != nil {
		return false, fmt.Errorf("%w: key %s: %w", ErrValueDecode, key, err)
	}
	return true, nil
}

// Set encodes value and stores it under key.
func (s *SQLiteStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %s: %w", ErrValueEncode, key, err)
	}

	query := `
	INSERT INTO local_store (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
	`
	if _, err := s.conn.Exec(query, key, string(raw)); err != nil {
		return fmt.Errorf("save key %s: %w", key, err)
	}
	return nil
}

// Delete removes key from the store.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.conn.Exec(`DELETE FROM local_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys in lexical order.
func (s *SQLiteStore) Keys() ([]string, error) {
	rows, err := s.conn.Query(`SELECT key FROM local_store ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("query keys: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
