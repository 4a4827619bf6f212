package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/renderer"
)

type depositCmd struct {
	amount string
	source string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "add money to the wallet" }
func (*depositCmd) Usage() string {
	return `kw deposit -amount <amount> [-source <source>]

  Adds money to the wallet balance and records a Deposit transaction.
  The source, when given, appears in the transaction label.

Usage Examples:
$ kw deposit -amount 100
$ kw deposit -amount 2200 -source "Salary"
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to deposit.")
	f.StringVar(&c.source, "source", "", "Where the money comes from.")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snap, err := ledger.Deposit(ctx, c.amount, c.source)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(ledger.Account(), snap))
	return subcommands.ExitSuccess
}
