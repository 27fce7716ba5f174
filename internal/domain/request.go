package domain

import "time"

// MessageInput is a message as submitted by a client. Ts is optional and
// defaults to the time of the call when omitted.
type MessageInput struct {
	Role Role       `json:"role"`
	Text string     `json:"text"`
	Ts   *time.Time `json:"ts,omitempty"`
}

// CreateSessionRequest is the payload for creating a session.
type CreateSessionRequest struct {
	UserID   string         `json:"userId"`
	Title    string         `json:"title"`
	Messages []MessageInput `json:"messages"`
}

// UpdateSessionRequest carries a partial update. Pointer fields distinguish
// "not provided" from "provided as empty": a nil field leaves the stored
// value untouched, while a non-nil Messages replaces the whole sequence.
type UpdateSessionRequest struct {
	UserID   string          `json:"userId"`
	Title    *string         `json:"title,omitempty"`
	Messages *[]MessageInput `json:"messages,omitempty"`
}
