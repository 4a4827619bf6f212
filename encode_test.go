package wallet

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeState_roundTrip(t *testing.T) {
	state := WalletState{
		Balance:       D("5230.50"),
		AvailableHold: D("120.75"),
		Transactions: []Transaction{
			{ID: 2, Type: TxBill, Label: "Internet plan", Amount: D("-89"), Date: time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)},
			{ID: 1, Type: TxDeposit, Label: "Salary top-up", Amount: D("2200"), Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	var buf bytes.Buffer
	if err := EncodeState(&buf, state); err != nil {
		t.Fatalf("EncodeState() error: %v", err)
	}

	decoded, err := DecodeState(&buf)
	if err != nil {
		t.Fatalf("DecodeState() error: %v", err)
	}

	if !decoded.Balance.Equal(state.Balance) {
		t.Errorf("balance = %s, want %s", decoded.Balance, state.Balance)
	}
	if !decoded.AvailableHold.Equal(state.AvailableHold) {
		t.Errorf("hold = %s, want %s", decoded.AvailableHold, state.AvailableHold)
	}
	if len(decoded.Transactions) != len(state.Transactions) {
		t.Fatalf("history length = %d, want %d", len(decoded.Transactions), len(state.Transactions))
	}
	for i, tx := range decoded.Transactions {
		want := state.Transactions[i]
		if tx.ID != want.ID || tx.Type != want.Type || tx.Label != want.Label ||
			!tx.Amount.Equal(want.Amount) || !tx.Date.Equal(want.Date) {
			t.Errorf("transaction[%d] = %+v, want %+v", i, tx, want)
		}
	}
}

func TestEncodeState_isCanonical(t *testing.T) {
	state := DefaultState()

	var first, second bytes.Buffer
	if err := EncodeState(&first, state); err != nil {
		t.Fatal(err)
	}
	if err := EncodeState(&second, state); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("two encodes of the same state differ")
	}
}
