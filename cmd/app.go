// Package cmd implements the CLI application to manage a personal wallet.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet"
	"github.com/kathmanduwallet/wallet/pgstore"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&depositCmd{}, "wallet")
	c.Register(&withdrawCmd{}, "wallet")
	c.Register(&transferCmd{}, "wallet")
	c.Register(&paybillCmd{}, "wallet")
	c.Register(&balanceCmd{}, "wallet")
	c.Register(&historyCmd{}, "wallet")

	c.Register(&auditCmd{}, "audit")

	c.Register(&recipientsCmd{}, "directory")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var walletDir = flag.String("wallet-dir", "", "Path to the wallet state folder (default ~/.kwallet)")
var account = flag.String("account", "default", "Account key to operate on")
var storeKind = flag.String("store", "dir", "State store backend: 'dir' or 'pg'")

// OpenStore opens the state store selected by the global flags.
func OpenStore(ctx context.Context) (wallet.Store, error) {
	switch *storeKind {
	case "dir":
		dir := *walletDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("cannot resolve home directory: %w", err)
			}
			dir = filepath.Join(home, ".kwallet")
		}
		return wallet.NewDirStore(dir), nil
	case "pg":
		return pgstore.Open(ctx, pgstore.DSNFromEnv())
	default:
		return nil, fmt.Errorf("unknown store backend %q (want 'dir' or 'pg')", *storeKind)
	}
}

// OpenLedger opens the ledger for the account selected by the global flags.
func OpenLedger(ctx context.Context) (*wallet.Ledger, error) {
	store, err := OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	return wallet.NewLedger(store, *account), nil
}

// printMarkdown renders markdown to stdout, falling back to the raw text
// when the terminal renderer cannot be built.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
