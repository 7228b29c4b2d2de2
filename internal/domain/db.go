package domain

import "context"

// Database defines lifecycle operations for the backing store. The
// implementation owns its own schema migrations, keeping the storage
// backend swappable behind the repository interfaces.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
