package wallet

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

// D is a helper for tests to build a decimal from a constant string.
func D(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// emptyWallet returns a ledger over a fresh in-memory store seeded with a
// zero balance and no history.
func emptyWallet(t *testing.T, account string) *Ledger {
	t.Helper()
	store := NewMemStore()
	if err := store.Save(context.Background(), account, WalletState{}); err != nil {
		t.Fatalf("seeding wallet: %v", err)
	}
	return NewLedger(store, account)
}

// fundedWallet returns a ledger seeded with the given balance.
func fundedWallet(t *testing.T, account, balance string) *Ledger {
	t.Helper()
	store := NewMemStore()
	state := WalletState{Balance: D(balance)}
	if err := store.Save(context.Background(), account, state); err != nil {
		t.Fatalf("seeding wallet: %v", err)
	}
	return NewLedger(store, account)
}
