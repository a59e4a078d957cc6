package repository

import (
	"context"
	"time"
)

// TokenStore holds opaque bearer tokens with TTL semantics. Tokens expire
// on their own; Del is only for explicit logout.
type TokenStore interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns the user id a token maps to, or an empty string when the
	// token is unknown or expired.
	Get(ctx context.Context, token string) (string, error)
	Del(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}
