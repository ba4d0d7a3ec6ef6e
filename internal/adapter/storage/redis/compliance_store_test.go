package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceStore_BlockUnblock(t *testing.T) {
	ctx := context.Background()
	store := NewComplianceStore(newTestClient(t))

	blocked, err := store.IsBlocked(ctx, "mallory")
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, store.Block(ctx, "mallory"))
	blocked, err = store.IsBlocked(ctx, "mallory")
	require.NoError(t, err)
	assert.True(t, blocked)

	// Removal takes effect on the very next check.
	require.NoError(t, store.Unblock(ctx, "mallory"))
	blocked, err = store.IsBlocked(ctx, "mallory")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestComplianceStore_BlockIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewComplianceStore(newTestClient(t))

	require.NoError(t, store.Block(ctx, "mallory"))
	require.NoError(t, store.Block(ctx, "mallory"))

	blocked, err := store.IsBlocked(ctx, "mallory")
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, store.Unblock(ctx, "mallory"))
	require.NoError(t, store.Unblock(ctx, "mallory"))
}
