package domain

import (
	"context"
	"time"
)

// Session is proof of a completed login. The token is an opaque,
// URL-safe random string; possession alone authorizes. A session is valid
// only while the row exists and the current time is before ExpiresAt.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	// Create inserts the session and sets ID and CreatedAt on success.
	Create(ctx context.Context, session *Session) error

	// GetByToken resolves a token to its session and owning user.
	// This is a read-and-maybe-mutate operation: if the session exists but
	// has expired, the row is deleted as a side effect and ErrNotFound is
	// returned. Expiry is enforced lazily here; there is no background
	// reaper.
	GetByToken(ctx context.Context, token string) (*User, *Session, error)

	// DeleteByToken revokes a session. Deleting a token that does not
	// exist is not an error.
	DeleteByToken(ctx context.Context, token string) error
}
