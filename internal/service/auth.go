package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/supportlog/internal/domain"
	"github.com/msomdec/supportlog/internal/password"
)

// SessionTTL is how long a session remains valid after login. Expiry is
// absolute; activity does not extend it.
const SessionTTL = 12 * time.Hour

const tokenBytes = 32

// AuthService orchestrates signup, login, logout, and session resolution
// over the credential and session stores.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// BootstrapAccount is the demo identity created at first start. The
// credential is a documented operational convenience, not a secret.
type BootstrapAccount struct {
	Email    string
	FullName string
	Password string
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Both storage and lookup go through this, so emails differing only in case
// collide.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates the fields and creates the account. It never logs the
// caller in; a separate Login is required. Returns ErrInvalidInput for
// malformed fields and ErrDuplicateEmail if the address is taken.
func (s *AuthService) Signup(ctx context.Context, email, fullName, pw string) (*domain.User, error) {
	email = NormalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" || fullName == "" {
		return nil, fmt.Errorf("%w: email and full name are required", domain.ErrInvalidInput)
	}
	if len(pw) < 10 {
		return nil, fmt.Errorf("%w: password must be at least 10 characters", domain.ErrInvalidInput)
	}

	salt, hash, err := password.NewRecord(pw)
	if err != nil {
		return nil, fmt.Errorf("create password record: %w", err)
	}

	user := &domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordSalt: salt,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and mints a new session. Unknown email and
// wrong password both return ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, pw string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if !password.Verify(pw, user.PasswordSalt, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}

	session := &domain.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return user, token, nil
}

// Logout revokes the session for the given token. It is idempotent: an
// empty, unknown, or already-revoked token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to its user. Every call goes to the
// session store; nothing is cached between requests. Missing, unknown, and
// expired tokens all return ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	user, _, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return user, nil
}

// Bootstrap ensures the configured demo account exists. It is called once
// at process start and is idempotent: if the account is already present it
// is returned unchanged.
func (s *AuthService) Bootstrap(ctx context.Context, acct BootstrapAccount) (*domain.User, error) {
	email := NormalizeEmail(acct.Email)
	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up bootstrap account: %w", err)
	}

	user, err = s.Signup(ctx, acct.Email, acct.FullName, acct.Password)
	if err != nil {
		// A concurrent bootstrap may have won the insert.
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return s.users.GetByEmail(ctx, email)
		}
		return nil, fmt.Errorf("create bootstrap account: %w", err)
	}
	return user, nil
}

// newToken returns a fresh URL-safe bearer token with 32 bytes of entropy.
func newToken() (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
