package wallet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is the persistence contract of the ledger: load and save one wallet
// state document per account key. Load must return a deep, independent copy;
// a store never hands out state that a caller could mutate in place.
//
// When no state exists for an account, Load returns the seeded DefaultState
// so demos start non-empty.
type Store interface {
	Load(ctx context.Context, account string) (WalletState, error)
	Save(ctx context.Context, account string, state WalletState) error
}

// DirStore persists each account's wallet state as a JSON file named
// "<account>.json" under a directory.
type DirStore struct {
	Dir string
}

// NewDirStore creates a store rooted at dir. The directory is created on the
// first Save.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir}
}

func (s *DirStore) path(account string) (string, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return "", fmt.Errorf("account key is empty")
	}
	if strings.ContainsAny(account, `/\`) {
		return "", fmt.Errorf("account key %q must not contain path separators", account)
	}
	return filepath.Join(s.Dir, account+".json"), nil
}

// Load reads the wallet state for account. A missing file yields the seeded
// default state.
func (s *DirStore) Load(_ context.Context, account string) (WalletState, error) {
	path, err := s.path(account)
	if err != nil {
		return WalletState{}, err
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, no wallet state for %q, using the default state instead", account)
		return DefaultState(), nil
	}
	if err != nil {
		return WalletState{}, fmt.Errorf("could not open wallet file %q: %w", path, err)
	}
	defer f.Close()

	state, err := DecodeState(f)
	if err != nil {
		return WalletState{}, fmt.Errorf("could not read wallet file %q: %w", path, err)
	}
	return state, nil
}

// Save writes the wallet state for account, creating the directory if needed.
func (s *DirStore) Save(_ context.Context, account string, state WalletState) error {
	path, err := s.path(account)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create wallet directory for %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create wallet file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeState(f, state); err != nil {
		return fmt.Errorf("could not write wallet file %q: %w", path, err)
	}
	return nil
}

// MemStore is an in-memory Store used in tests and throwaway sessions. It
// deep-copies on both Load and Save, matching the independence guarantee of
// the real stores.
type MemStore struct {
	mu     sync.Mutex
	states map[string]WalletState
}

func NewMemStore() *MemStore {
	return &MemStore{states: make(map[string]WalletState)}
}

func (s *MemStore) Load(_ context.Context, account string) (WalletState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[account]
	if !ok {
		return DefaultState(), nil
	}
	return state.Clone(), nil
}

func (s *MemStore) Save(_ context.Context, account string, state WalletState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[account] = state.Clone()
	return nil
}
