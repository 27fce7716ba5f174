// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/chatvault/chatvault/internal/domain"
)

// SessionPatch carries the fields of a partial update. Nil fields are left
// untouched; a non-nil Messages replaces the stored sequence in full.
type SessionPatch struct {
	Title    *string
	Messages *[]domain.Message
}

// Store defines the interface for session persistence. Every read and write
// beyond creation is scoped by both the session id and the owning user id,
// so one owner can never reach another's session.
type Store interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID, userID string) (*domain.Session, error)
	ListSessions(ctx context.Context, userID string, limit, offset int) ([]domain.Session, error)
	UpdateSession(ctx context.Context, sessionID, userID string, patch SessionPatch) (bool, error)
	DeleteSession(ctx context.Context, sessionID, userID string) (bool, error)

	// Lifecycle
	Close() error
}
