package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/renderer"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the wallet balance" }
func (*balanceCmd) Usage() string {
	return `kw balance

  Shows the wallet balance, the amount on hold, and the available amount.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snap, err := ledger.Snapshot(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(ledger.Account(), snap))
	return subcommands.ExitSuccess
}
