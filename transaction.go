package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the kind of ledger entry.
type TxType string

// Transaction types recorded in the history.
const (
	TxDeposit  TxType = "Deposit"
	TxWithdraw TxType = "Withdraw"
	TxTransfer TxType = "Transfer"
	TxBill     TxType = "Bill"
)

// Transaction is a single immutable entry in the wallet history. It is
// created exactly once, atomically with a balance mutation, and never
// edited or deleted afterwards.
type Transaction struct {
	ID     int64           `json:"id"`     // unique, ordered by creation time
	Type   TxType          `json:"type"`   // Deposit, Withdraw, Transfer or Bill
	Label  string          `json:"label"`  // human-readable description
	Amount decimal.Decimal `json:"amount"` // signed: positive inflow, negative outflow
	Date   time.Time       `json:"date"`   // creation timestamp, display only
}

// IsInflow reports whether the transaction increased the balance.
func (t Transaction) IsInflow() bool { return t.Amount.IsPositive() }

// MarshalJSON implements the json.Marshaler interface for Transaction,
// keeping the persisted field order stable.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("label", t.Label)
	w.Append("amount", t.Amount)
	w.Append("date", t.Date.UTC().Format(time.RFC3339))
	return w.MarshalJSON()
}

// newTransaction creates a transaction dated now. The id is the creation
// time in unix milliseconds, bumped past lastID so that two operations
// landing on the same millisecond still get distinct, ordered ids.
func newTransaction(txType TxType, label string, amount decimal.Decimal, lastID int64) Transaction {
	now := time.Now()
	id := now.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	return Transaction{
		ID:     id,
		Type:   txType,
		Label:  label,
		Amount: amount,
		Date:   now,
	}
}
