package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.UserID(ctx, token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)

	require.NoError(t, s.Destroy(ctx, token))

	_, err = s.UserID(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	_, err := s.UserID(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Destroying an unknown token is a no-op.
	assert.NoError(t, s.Destroy(context.Background(), "no-such-token"))
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(-time.Second) // already expired on creation
	ctx := context.Background()

	token, err := s.Create(ctx, 7)
	require.NoError(t, err)

	_, err = s.UserID(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCreateSweepsExpired(t *testing.T) {
	s := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx, uint(i+1))
		require.NoError(t, err)
	}
	time.Sleep(10 * time.Millisecond)

	// Abandoned sessions go during the next Create, not only when their
	// own token is looked up.
	token, err := s.Create(ctx, 99)
	require.NoError(t, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.entries, 1)
	assert.Contains(t, s.entries, token)
}

func TestMemoryStoreTokensAreOpaqueAndUnique(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	a, err := s.Create(ctx, 1)
	require.NoError(t, err)
	b, err := s.Create(ctx, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
