package ports

import (
	"context"
	"time"
)

// SessionStore tracks live login sessions so they can be revoked before
// their token expires.
type SessionStore interface {
	Create(ctx context.Context, id, username string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Revoke(ctx context.Context, id string) error
}
