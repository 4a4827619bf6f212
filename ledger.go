package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger applies wallet operations for a single account on top of a Store.
//
// Every operation is a read-modify-write round trip: load the latest state,
// validate, append exactly one transaction, save, and return the updated
// snapshot. Validation happens before any write, so a rejected operation
// leaves the stored state untouched. The ledger keeps no state in memory
// between operations; serialization of concurrent writers is left to the
// store.
type Ledger struct {
	store   Store
	account string
}

// NewLedger creates a ledger for one account backed by store.
func NewLedger(store Store, account string) *Ledger {
	return &Ledger{store: store, account: account}
}

// Account returns the opaque account key this ledger operates on.
func (l *Ledger) Account() string { return l.account }

// Snapshot returns the current wallet state without mutating anything.
func (l *Ledger) Snapshot(ctx context.Context) (Snapshot, error) {
	return l.store.Load(ctx, l.account)
}

// Deposit adds a positive amount to the balance. The amount is free text
// and must parse to a number greater than zero. The source, when given,
// only shapes the transaction label.
func (l *Ledger) Deposit(ctx context.Context, amount, source string) (Snapshot, error) {
	value, err := parsePositiveAmount(amount)
	if err != nil {
		return Snapshot{}, fmt.Errorf("deposit: %w", err)
	}

	label := "Wallet deposit"
	if source = strings.TrimSpace(source); source != "" {
		label = "Top up from " + source
	}

	state, err := l.store.Load(ctx, l.account)
	if err != nil {
		return Snapshot{}, err
	}
	return l.commit(ctx, state, newTransaction(TxDeposit, label, value, state.lastID()))
}

// Withdraw removes a positive amount from the balance, bound for the given
// destination. The amount is checked against the full balance, not the
// balance minus hold: holds are informational only.
func (l *Ledger) Withdraw(ctx context.Context, amount, destination string) (Snapshot, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Snapshot{}, fmt.Errorf("withdraw: %w", ErrMissingDestination)
	}
	value, err := parsePositiveAmount(amount)
	if err != nil {
		return Snapshot{}, fmt.Errorf("withdraw: %w", err)
	}

	state, err := l.store.Load(ctx, l.account)
	if err != nil {
		return Snapshot{}, err
	}
	if value.GreaterThan(state.Balance) {
		return Snapshot{}, fmt.Errorf("withdraw %s: %w", value, ErrInsufficientFunds)
	}

	label := "Withdraw to " + destination
	return l.commit(ctx, state, newTransaction(TxWithdraw, label, value.Neg(), state.lastID()))
}

// Transfer sends a positive amount to a named recipient.
func (l *Ledger) Transfer(ctx context.Context, to, amount string) (Snapshot, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return Snapshot{}, fmt.Errorf("transfer: %w", ErrMissingRecipient)
	}
	value, err := parsePositiveAmount(amount)
	if err != nil {
		return Snapshot{}, fmt.Errorf("transfer: %w", err)
	}

	state, err := l.store.Load(ctx, l.account)
	if err != nil {
		return Snapshot{}, err
	}
	if value.GreaterThan(state.Balance) {
		return Snapshot{}, fmt.Errorf("transfer %s: %w", value, ErrInsufficientFunds)
	}

	label := "Sent to " + to
	return l.commit(ctx, state, newTransaction(TxTransfer, label, value.Neg(), state.lastID()))
}

// PayBill pays a service bill. An amount that does not parse is coerced to
// zero rather than rejected; this mirrors the historical behavior of the
// wallet and is intentional.
func (l *Ledger) PayBill(ctx context.Context, serviceID, serviceName, amount string) (Snapshot, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		value = decimal.Zero
	}

	state, err := l.store.Load(ctx, l.account)
	if err != nil {
		return Snapshot{}, err
	}
	if value.GreaterThan(state.Balance) {
		return Snapshot{}, fmt.Errorf("pay bill %s: %w", value, ErrInsufficientFunds)
	}

	service := serviceName
	if service == "" {
		service = serviceID
	}
	label := service + " bill"
	return l.commit(ctx, state, newTransaction(TxBill, label, value.Neg(), state.lastID()))
}

// commit appends tx to the state, persists the result and returns it.
func (l *Ledger) commit(ctx context.Context, state WalletState, tx Transaction) (Snapshot, error) {
	next := state.prepend(tx)
	if err := l.store.Save(ctx, l.account, next); err != nil {
		return Snapshot{}, fmt.Errorf("could not save wallet state for %q: %w", l.account, err)
	}
	return next, nil
}
