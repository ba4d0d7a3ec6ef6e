// Package ledger provides in-process implementations of the token ledger
// and payment-asset book. The vault core talks to these through ports, so a
// chain-backed or custodial implementation can replace them without
// touching the services.
package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// MemoryLedger implements ports.TokenLedger with in-memory balances.
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	supply   decimal.Decimal
	paused   bool
}

// NewMemoryLedger creates an empty in-memory token ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[string]decimal.Decimal)}
}

// SetPaused flips the ledger-wide pause switch.
func (l *MemoryLedger) SetPaused(paused bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = paused
}

// Paused reports the ledger-wide pause switch.
func (l *MemoryLedger) Paused(_ context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused, nil
}

// Mint credits newly issued tokens to an account.
func (l *MemoryLedger) Mint(_ context.Context, to string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.check(to, amount); err != nil {
		return err
	}
	l.balances[to] = l.balances[to].Add(amount)
	l.supply = l.supply.Add(amount)
	return nil
}

// Burn debits tokens from an account and retires them.
func (l *MemoryLedger) Burn(_ context.Context, from string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.check(from, amount); err != nil {
		return err
	}
	if l.balances[from].LessThan(amount) {
		return fmt.Errorf("burn %s from %s: insufficient balance", amount, from)
	}
	l.balances[from] = l.balances[from].Sub(amount)
	l.supply = l.supply.Sub(amount)
	return nil
}

// Transfer moves tokens between accounts.
func (l *MemoryLedger) Transfer(_ context.Context, from, to string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.check(from, amount); err != nil {
		return err
	}
	if to == "" {
		return fmt.Errorf("transfer to empty account")
	}
	if l.balances[from].LessThan(amount) {
		return fmt.Errorf("transfer %s from %s: insufficient balance", amount, from)
	}
	l.balances[from] = l.balances[from].Sub(amount)
	l.balances[to] = l.balances[to].Add(amount)
	return nil
}

// BalanceOf returns an account's token balance.
func (l *MemoryLedger) BalanceOf(_ context.Context, account string) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account], nil
}

// TotalSupply returns the outstanding token supply.
func (l *MemoryLedger) TotalSupply() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.supply
}

func (l *MemoryLedger) check(account string, amount decimal.Decimal) error {
	if account == "" {
		return fmt.Errorf("empty account")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s is not positive", amount)
	}
	return nil
}

// assetKey namespaces balances per asset symbol.
type assetKey struct {
	asset   string
	account string
}

// MemoryAssetBook implements ports.AssetBook with in-memory balances per
// asset.
type MemoryAssetBook struct {
	mu       sync.Mutex
	balances map[assetKey]decimal.Decimal
}

// NewMemoryAssetBook creates an empty in-memory asset book.
func NewMemoryAssetBook() *MemoryAssetBook {
	return &MemoryAssetBook{balances: make(map[assetKey]decimal.Decimal)}
}

// Credit seeds an account with payment-asset funds.
func (b *MemoryAssetBook) Credit(asset, account string, amount decimal.Decimal) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := assetKey{asset: asset, account: account}
	b.balances[k] = b.balances[k].Add(amount)
}

// Transfer moves a payment-asset amount between accounts.
func (b *MemoryAssetBook) Transfer(_ context.Context, asset, from, to string, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if asset == "" || from == "" || to == "" {
		return fmt.Errorf("asset, from and to are required")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount %s is not positive", amount)
	}
	fromKey := assetKey{asset: asset, account: from}
	if b.balances[fromKey].LessThan(amount) {
		return fmt.Errorf("transfer %s %s from %s: insufficient balance", amount, asset, from)
	}
	toKey := assetKey{asset: asset, account: to}
	b.balances[fromKey] = b.balances[fromKey].Sub(amount)
	b.balances[toKey] = b.balances[toKey].Add(amount)
	return nil
}

// BalanceOf returns an account's balance in one payment asset.
func (b *MemoryAssetBook) BalanceOf(_ context.Context, asset, account string) (decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[assetKey{asset: asset, account: account}], nil
}
