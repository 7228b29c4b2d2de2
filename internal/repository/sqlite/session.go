package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/supportlog/internal/domain"
)

// SessionRepository implements domain.SessionRepository using SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SQLite-backed SessionRepository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db.SqlDB}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (user_id, token, expires_at, created_at)
		 VALUES (?, ?, ?, ?)`,
		session.UserID, session.Token, session.ExpiresAt.UTC(), now,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	session.ID = id
	session.CreatedAt = now
	return nil
}

// GetByToken resolves a token to its session and owning user. Expired
// sessions are deleted here rather than by a background sweep: when the
// looked-up row's expiry has passed, it is removed and ErrNotFound is
// returned, so this "read" can write.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*domain.User, *domain.Session, error) {
	user := &domain.User{}
	session := &domain.Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT s.id, s.user_id, s.token, s.expires_at, s.created_at,
		        u.id, u.email, u.full_name, u.password_salt, u.password_hash, u.created_at
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.token = ?`, token,
	).Scan(&session.ID, &session.UserID, &session.Token, &session.ExpiresAt, &session.CreatedAt,
		&user.ID, &user.Email, &user.FullName, &user.PasswordSalt, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("query session by token: %w", err)
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		if err := r.DeleteByToken(ctx, token); err != nil {
			return nil, nil, fmt.Errorf("delete expired session: %w", err)
		}
		return nil, nil, domain.ErrNotFound
	}

	return user, session, nil
}

// DeleteByToken revokes a session. It is idempotent; deleting an unknown
// token succeeds.
func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
