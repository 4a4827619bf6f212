package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/renderer"
)

type withdrawCmd struct {
	amount string
	to     string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "move money out of the wallet" }
func (*withdrawCmd) Usage() string {
	return `kw withdraw -amount <amount> -to <destination>

  Moves money out of the wallet to the given destination and records a
  Withdraw transaction. The amount must not exceed the current balance.

Usage Examples:
$ kw withdraw -amount 150 -to "Bank ****1234"
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to withdraw.")
	f.StringVar(&c.to, "to", "", "Where the money goes.")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snap, err := ledger.Withdraw(ctx, c.amount, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(ledger.Account(), snap))
	return subcommands.ExitSuccess
}
