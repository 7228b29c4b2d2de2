package domain

import (
	"context"
	"time"
)

// User is a registered account. Emails are stored lower-cased and trimmed;
// lookups expect the same normalization. PasswordSalt and PasswordHash are
// hex-encoded and must never leave the server.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordSalt string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts the user and sets ID and CreatedAt on success.
	// Returns ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
