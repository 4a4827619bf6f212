package wallet

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// WalletState is the full persisted state of one account: the balance, the
// informational hold, and the transaction history, newest first.
//
// The invariant maintained by the ledger is that Balance equals the seed
// balance plus the sum of all transaction amounts.
type WalletState struct {
	Balance       decimal.Decimal `json:"balance"`
	AvailableHold decimal.Decimal `json:"availableHold"`
	Transactions  []Transaction   `json:"transactions"`
}

// Snapshot is the serializable view returned to callers after every
// operation. It is the same shape the store persists.
type Snapshot = WalletState

// Available returns the part of the balance not covered by a hold. Holds are
// informational: ledger operations validate against the full Balance.
func (s WalletState) Available() decimal.Decimal {
	return s.Balance.Sub(s.AvailableHold)
}

// Clone returns a deep, independent copy of the state. Stores hand out
// clones so callers can never mutate persisted state through a snapshot.
func (s WalletState) Clone() WalletState {
	s.Transactions = slices.Clone(s.Transactions)
	return s
}

// lastID returns the id of the newest transaction, or 0 for an empty
// history. Transactions are kept newest first.
func (s WalletState) lastID() int64 {
	if len(s.Transactions) == 0 {
		return 0
	}
	return s.Transactions[0].ID
}

// prepend returns the state with tx added at the head of the history and
// the balance shifted by the transaction amount.
func (s WalletState) prepend(tx Transaction) WalletState {
	next := s.Clone()
	next.Balance = next.Balance.Add(tx.Amount)
	next.Transactions = append([]Transaction{tx}, next.Transactions...)
	return next
}

// MarshalJSON implements the json.Marshaler interface for WalletState,
// keeping the persisted field order stable.
func (s WalletState) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("balance", s.Balance)
	w.Append("availableHold", s.AvailableHold)
	if s.Transactions == nil {
		w.Append("transactions", []Transaction{})
	} else {
		w.Append("transactions", s.Transactions)
	}
	return w.MarshalJSON()
}

// DefaultState returns the seeded demo wallet served when an account has no
// stored state yet, so a fresh wallet is never empty.
func DefaultState() WalletState {
	day := func(d string) time.Time {
		t, _ := time.Parse("2006-01-02", d)
		return t
	}
	return WalletState{
		Balance:       decimal.NewFromFloat(5230.50),
		AvailableHold: decimal.NewFromFloat(120.75),
		Transactions: []Transaction{
			{ID: 1, Type: TxDeposit, Label: "Salary top-up", Amount: decimal.NewFromInt(2200), Date: day("2025-02-01")},
			{ID: 2, Type: TxBill, Label: "Internet plan", Amount: decimal.NewFromInt(-89), Date: day("2025-01-29")},
			{ID: 3, Type: TxTransfer, Label: "Sent to Karen", Amount: decimal.NewFromInt(-150), Date: day("2025-01-27")},
			{ID: 4, Type: TxDeposit, Label: "Cashback", Amount: decimal.NewFromFloat(38.5), Date: day("2025-01-25")},
		},
	}
}
