// Package session implements the authentication gate's server-side session
// state: opaque tokens mapped to user ids, cleared on logout.
package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned for tokens that are unknown or expired.
var ErrNotFound = errors.New("session not found")

// Store holds active sessions keyed by opaque token.
type Store interface {
	// Create opens a session for userID and returns its token.
	Create(ctx context.Context, userID uint) (string, error)
	// UserID resolves a token to the logged-in user, or ErrNotFound.
	UserID(ctx context.Context, token string) (uint, error)
	// Destroy clears the session. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}
