package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMemoryLedger_MintBurnSupply(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	require.NoError(t, l.Mint(ctx, "alice", dec("100")))
	require.NoError(t, l.Mint(ctx, "bob", dec("50")))
	assert.True(t, l.TotalSupply().Equal(dec("150")))

	require.NoError(t, l.Burn(ctx, "alice", dec("30")))
	balance, err := l.BalanceOf(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("70")))
	assert.True(t, l.TotalSupply().Equal(dec("120")))
}

func TestMemoryLedger_BurnInsufficient(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	require.NoError(t, l.Mint(ctx, "alice", dec("10")))

	err := l.Burn(ctx, "alice", dec("11"))
	assert.Error(t, err)

	balance, _ := l.BalanceOf(ctx, "alice")
	assert.True(t, balance.Equal(dec("10")))
}

func TestMemoryLedger_Transfer(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	require.NoError(t, l.Mint(ctx, "alice", dec("100")))

	require.NoError(t, l.Transfer(ctx, "alice", "bob", dec("40")))
	a, _ := l.BalanceOf(ctx, "alice")
	b, _ := l.BalanceOf(ctx, "bob")
	assert.True(t, a.Equal(dec("60")))
	assert.True(t, b.Equal(dec("40")))

	// Supply is unaffected by transfers.
	assert.True(t, l.TotalSupply().Equal(dec("100")))
}

func TestMemoryLedger_RejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()
	assert.Error(t, l.Mint(ctx, "alice", dec("0")))
	assert.Error(t, l.Mint(ctx, "alice", dec("-1")))
}

func TestMemoryLedger_Paused(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger()

	paused, err := l.Paused(ctx)
	require.NoError(t, err)
	assert.False(t, paused)

	l.SetPaused(true)
	paused, _ = l.Paused(ctx)
	assert.True(t, paused)
}

func TestMemoryAssetBook_TransferIsolatesAssets(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryAssetBook()
	b.Credit("USDC", "alice", dec("100"))
	b.Credit("EURC", "alice", dec("100"))

	require.NoError(t, b.Transfer(ctx, "USDC", "alice", "vault", dec("60")))

	usdc, _ := b.BalanceOf(ctx, "USDC", "alice")
	eurc, _ := b.BalanceOf(ctx, "EURC", "alice")
	assert.True(t, usdc.Equal(dec("40")))
	assert.True(t, eurc.Equal(dec("100")))
}

func TestMemoryAssetBook_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryAssetBook()
	b.Credit("USDC", "alice", dec("10"))

	err := b.Transfer(ctx, "USDC", "alice", "vault", dec("11"))
	assert.Error(t, err)

	balance, _ := b.BalanceOf(ctx, "USDC", "alice")
	assert.True(t, balance.Equal(dec("10")))
}
