package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/chatvault/chatvault/internal/domain"
	"github.com/chatvault/chatvault/internal/repository"
)

// DefaultListLimit bounds a list call when the client does not ask for one.
const DefaultListLimit = 50

// CreateSession validates the inputs, assigns a fresh id and creation time,
// and persists the session. The returned value includes the server-assigned
// fields.
func (s *Service) CreateSession(ctx context.Context, userID, title string, messages []domain.MessageInput) (*domain.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidArgument)
	}
	normalized, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	stored, err := buildMessages(messages)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        "sess_" + uuid.New().String(),
		UserID:    userID,
		Title:     normalized,
		Messages:  stored,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, storageErr("create session", err)
	}
	return session, nil
}

// ListSessions returns userID's sessions, newest first. A zero limit falls
// back to DefaultListLimit; negative paging values are rejected.
func (s *Service) ListSessions(ctx context.Context, userID string, limit, offset int) ([]domain.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidArgument)
	}
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and skip must be non-negative", domain.ErrInvalidArgument)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}

	sessions, err := s.store.ListSessions(ctx, userID, limit, offset)
	if err != nil {
		return nil, storageErr("list sessions", err)
	}
	return sessions, nil
}

// GetSession returns the session matching (sessionID, userID). A session
// owned by another user reports the same ErrNotFound as a missing one.
func (s *Service) GetSession(ctx context.Context, sessionID, userID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidArgument)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidArgument)
	}

	session, err := s.store.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, storageErr("get session", err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return session, nil
}

// UpdateSession applies the provided fields and returns the stored session.
// A provided title runs through the same normalization as create; provided
// messages replace the stored sequence in full. Omitted fields are left
// untouched.
func (s *Service) UpdateSession(ctx context.Context, sessionID string, req *domain.UpdateSessionRequest) (*domain.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidArgument)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrInvalidArgument)
	}

	var patch store.SessionPatch
	if req.Title != nil {
		normalized, err := normalizeTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &normalized
	}
	if req.Messages != nil {
		stored, err := buildMessages(*req.Messages)
		if err != nil {
			return nil, err
		}
		patch.Messages = &stored
	}

	updated, err := s.store.UpdateSession(ctx, sessionID, req.UserID, patch)
	if err != nil {
		return nil, storageErr("update session", err)
	}
	if !updated {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}

	session, err := s.store.GetSession(ctx, sessionID, req.UserID)
	if err != nil {
		return nil, storageErr("reload session", err)
	}
	if session == nil {
		// Deleted between the update and the reload.
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return session, nil
}

// DeleteSession removes the session matching (sessionID, userID). Deleting
// an already-deleted session reports ErrNotFound.
func (s *Service) DeleteSession(ctx context.Context, sessionID, userID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", domain.ErrInvalidArgument)
	}
	if userID == "" {
		return fmt.Errorf("%w: userId is required", domain.ErrInvalidArgument)
	}

	deleted, err := s.store.DeleteSession(ctx, sessionID, userID)
	if err != nil {
		return storageErr("delete session", err)
	}
	if !deleted {
		return fmt.Errorf("%w: session %s", domain.ErrNotFound, sessionID)
	}
	return nil
}

// normalizeTitle trims the title, falls back to the default when the trimmed
// value is empty, and rejects anything over the cap.
func normalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return domain.DefaultTitle, nil
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxTitleChars {
		return "", fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidArgument, domain.MaxTitleChars)
	}
	return trimmed, nil
}

// buildMessages validates submitted messages and stamps missing timestamps.
// Order is preserved exactly as submitted.
func buildMessages(inputs []domain.MessageInput) ([]domain.Message, error) {
	now := time.Now().UTC()
	messages := make([]domain.Message, 0, len(inputs))
	for i, in := range inputs {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%w: messages[%d].role must be %q or %q",
				domain.ErrInvalidArgument, i, domain.RoleUser, domain.RoleAssistant)
		}
		if in.Text == "" {
			return nil, fmt.Errorf("%w: messages[%d].text is required", domain.ErrInvalidArgument, i)
		}
		if utf8.RuneCountInString(in.Text) > domain.MaxTextChars {
			return nil, fmt.Errorf("%w: messages[%d].text exceeds %d characters",
				domain.ErrInvalidArgument, i, domain.MaxTextChars)
		}
		ts := now
		if in.Ts != nil {
			ts = in.Ts.UTC()
		}
		messages = append(messages, domain.Message{Role: in.Role, Text: in.Text, Ts: ts})
	}
	return messages, nil
}

// storageErr tags a backend failure with the taxonomy sentinel while keeping
// the cause in the chain.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}
