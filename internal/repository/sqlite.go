package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/chatvault/chatvault/internal/domain"
)

// SQLiteStore implements Store using SQLite.
//
// Sessions are stored one row per session, with the message sequence encoded
// as a JSON array in a TEXT column. The row is the unit of atomicity: a full
// message replacement is a single UPDATE, never a delete-then-insert. The
// integer primary key is storage-internal and never leaves this package;
// the outward identifier is the session_id column, which carries its own
// UNIQUE constraint.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			messages TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id, created_at DESC, session_id DESC)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSession inserts a new session. Duplicate session ids are rejected by
// the UNIQUE constraint at insert time, not by a read-before-write check.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *domain.Session) error {
	messages, err := encodeMessages(session.Messages)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, user_id, title, messages, created_at) VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.UserID, session.Title, messages, session.CreatedAt)
	return err
}

// GetSession retrieves a session scoped by (session_id, user_id). It returns
// (nil, nil) when no row matches, whether the id is unknown or the session
// belongs to another user.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID, userID string) (*domain.Session, error) {
	var session domain.Session
	var messages string
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, user_id, title, messages, created_at FROM sessions WHERE session_id = ? AND user_id = ?`,
		sessionID, userID).Scan(&session.ID, &session.UserID, &session.Title, &messages, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := decodeMessages(messages, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns userID's sessions, most recent first, skipping offset
// rows and returning at most limit. session_id breaks created_at ties so
// pagination stays deterministic across calls.
func (s *SQLiteStore) ListSessions(ctx context.Context, userID string, limit, offset int) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, user_id, title, messages, created_at FROM sessions
		 WHERE user_id = ?
		 ORDER BY created_at DESC, session_id DESC
		 LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0)
	for rows.Next() {
		var session domain.Session
		var messages string
		if err := rows.Scan(&session.ID, &session.UserID, &session.Title, &messages, &session.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodeMessages(messages, &session); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// UpdateSession applies a partial update as a single conditional UPDATE
// scoped by (session_id, user_id), so concurrent writers cannot interleave
// between a read and a write. It reports whether a row was matched.
func (s *SQLiteStore) UpdateSession(ctx context.Context, sessionID, userID string, patch SessionPatch) (bool, error) {
	var sets []string
	var args []interface{}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Messages != nil {
		encoded, err := encodeMessages(*patch.Messages)
		if err != nil {
			return false, err
		}
		sets = append(sets, "messages = ?")
		args = append(args, encoded)
	}
	if len(sets) == 0 {
		// Nothing to change; report whether the row exists.
		session, err := s.GetSession(ctx, sessionID, userID)
		if err != nil {
			return false, err
		}
		return session != nil, nil
	}

	args = append(args, sessionID, userID)
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE sessions SET %s WHERE session_id = ? AND user_id = ?`, strings.Join(sets, ", ")),
		args...)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteSession removes the session matching (session_id, user_id) in a
// single DELETE and reports whether a row was removed. Removal is permanent.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID, userID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE session_id = ? AND user_id = ?`,
		sessionID, userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func encodeMessages(messages []domain.Message) (string, error) {
	if messages == nil {
		messages = []domain.Message{}
	}
	encoded, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("failed to encode messages: %w", err)
	}
	return string(encoded), nil
}

func decodeMessages(raw string, session *domain.Session) error {
	if err := json.Unmarshal([]byte(raw), &session.Messages); err != nil {
		return fmt.Errorf("failed to decode messages: %w", err)
	}
	if session.Messages == nil {
		session.Messages = []domain.Message{}
	}
	return nil
}
