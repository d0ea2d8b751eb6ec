package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mribeiro/bibliocli/internal/dbx"
)

// Storage keys. One row per field so a partial write never leaves a
// half-typed blob behind.
const (
	keyToken    = "token"
	keyUserID   = "user_id"
	keyUserName = "user_name"
	keyUserRole = "user_role"
)

// SQLiteStore persists the session in a local SQLite key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the session database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing session db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing session[%s]: %w", key, err)
	}
	return nil
}

// Get returns the stored session, or nil when no token is stored.
func (s *SQLiteStore) Get(ctx context.Context) (*Session, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	rawID, err := s.get(ctx, s.db, keyUserID)
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		// corrupt row; a fresh login overwrites it
		return nil, nil
	}

	nome, err := s.get(ctx, s.db, keyUserName)
	if err != nil {
		return nil, err
	}
	role, err := s.get(ctx, s.db, keyUserRole)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, UserID: userID, Nome: nome, Role: role}, nil
}

// Set writes all session fields in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, sess Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, sess.Token); err != nil {
			return err
		}
		if err := s.set(ctx, tx, keyUserID, strconv.FormatInt(sess.UserID, 10)); err != nil {
			return err
		}
		if err := s.set(ctx, tx, keyUserName, sess.Nome); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUserRole, sess.Role)
	})
}

// Clear removes every stored key.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
