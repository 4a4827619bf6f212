package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// pointGlobalsAt makes the global flags target a throwaway wallet directory.
func pointGlobalsAt(t *testing.T, dir string) {
	t.Helper()
	oldDir, oldAccount, oldStore := *walletDir, *account, *storeKind
	*walletDir, *account, *storeKind = dir, "default", "dir"
	t.Cleanup(func() {
		*walletDir, *account, *storeKind = oldDir, oldAccount, oldStore
	})
}

func TestHistoryCmd(t *testing.T) {
	pointGlobalsAt(t, t.TempDir())

	f := flag.NewFlagSet("history", flag.ContinueOnError)
	c := &historyCmd{}
	c.SetFlags(f)
	if err := f.Parse(nil); err != nil {
		t.Fatal(err)
	}

	if got := c.Execute(context.Background(), f); got != subcommands.ExitSuccess {
		t.Errorf("history = %v, want ExitSuccess", got)
	}
}

func TestHistoryCmd_headAndTail(t *testing.T) {
	pointGlobalsAt(t, t.TempDir())

	f := flag.NewFlagSet("history", flag.ContinueOnError)
	c := &historyCmd{head: 1, tail: 1}

	if got := c.Execute(context.Background(), f); got != subcommands.ExitUsageError {
		t.Errorf("history -head -tail = %v, want ExitUsageError", got)
	}
}

func TestOpenStore_unknownBackend(t *testing.T) {
	pointGlobalsAt(t, t.TempDir())
	*storeKind = "redis"

	if _, err := OpenStore(context.Background()); err == nil {
		t.Error("expected an error for an unknown store backend")
	}
}
