package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-gateway/internal/domain/entity"
)

func TestNewTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewToken()
		require.NoError(t, err)
		require.NotEmpty(t, tok)
		assert.False(t, seen[tok], "token repeated")
		seen[tok] = true
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	alice := &entity.Principal{ID: 1, Username: "alice"}

	token, err := store.Establish(ctx, alice)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Resolve is idempotent and returns the same principal until revoked.
	for i := 0; i < 3; i++ {
		p, err := store.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, alice, p)
	}

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, err := store.Resolve(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10 * time.Millisecond)

	token, err := store.Establish(ctx, &entity.Principal{ID: 2, Username: "bob"})
	require.NoError(t, err)

	_, err = store.Resolve(ctx, token)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestMemoryStoreIsolatesPrincipals(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	t1, err := store.Establish(ctx, &entity.Principal{ID: 1, Username: "alice"})
	require.NoError(t, err)
	t2, err := store.Establish(ctx, &entity.Principal{ID: 2, Username: "bob"})
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	p1, err := store.Resolve(ctx, t1)
	require.NoError(t, err)
	p2, err := store.Resolve(ctx, t2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)
}
