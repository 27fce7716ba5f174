// Package domain defines the core domain models for chatvault.
package domain

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

const (
	// MaxTitleChars caps a session title after trimming.
	MaxTitleChars = 200
	// MaxTextChars caps the text of a single message.
	MaxTextChars = 10000
	// DefaultTitle replaces a title that is empty after trimming.
	DefaultTitle = "Conversation"
)

// Session is the aggregate stored and served by the session store. All
// reads and writes are scoped by (ID, UserID); ID and CreatedAt are assigned
// by the store and immutable afterwards.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message is a single turn in a session. Messages carry no identity of their
// own; they exist only inside a session's ordered sequence, and the store
// never reorders them.
type Message struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	Ts   time.Time `json:"ts"`
}
