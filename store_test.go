package wallet

import (
	"context"
	"testing"
)

func TestDirStore_roundTrip(t *testing.T) {
	store := NewDirStore(t.TempDir())
	ctx := context.Background()

	state := DefaultState()
	if err := store.Save(ctx, "alice", state); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.Balance.Equal(state.Balance) {
		t.Errorf("balance = %s, want %s", loaded.Balance, state.Balance)
	}
	if len(loaded.Transactions) != len(state.Transactions) {
		t.Errorf("history length = %d, want %d", len(loaded.Transactions), len(state.Transactions))
	}

	// save(load()) must be a no-op on a subsequent load.
	if err := store.Save(ctx, "alice", loaded); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	again, err := store.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !again.Balance.Equal(loaded.Balance) || len(again.Transactions) != len(loaded.Transactions) {
		t.Errorf("save(load()) changed the stored state")
	}
}

func TestDirStore_missingAccountYieldsDefault(t *testing.T) {
	store := NewDirStore(t.TempDir())

	state, err := store.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if state.Balance.IsZero() || len(state.Transactions) == 0 {
		t.Errorf("expected the seeded default state, got balance=%s history=%d",
			state.Balance, len(state.Transactions))
	}
}

func TestDirStore_rejectsBadAccountKeys(t *testing.T) {
	store := NewDirStore(t.TempDir())
	for _, account := range []string{"", "  ", "a/b", `a\b`} {
		t.Run("account "+account, func(t *testing.T) {
			if _, err := store.Load(context.Background(), account); err == nil {
				t.Errorf("Load(%q) accepted a bad account key", account)
			}
		})
	}
}

func TestMemStore_copiesOnSave(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	state := DefaultState()
	if err := store.Save(ctx, "alice", state); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's copy after Save must not leak into the store.
	state.Transactions[0].Label = "tampered"
	loaded, _ := store.Load(ctx, "alice")
	if loaded.Transactions[0].Label == "tampered" {
		t.Errorf("store shares memory with the caller")
	}
}
