package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/renderer"
)

type transferCmd struct {
	amount string
	to     string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "send money to a recipient" }
func (*transferCmd) Usage() string {
	return `kw transfer -to <recipient> -amount <amount>

  Sends money to a recipient and records a Transfer transaction.
  Use 'kw recipients' to browse the recipient directory.

Usage Examples:
$ kw transfer -to karen@example.com -amount 25
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Recipient of the transfer.")
	f.StringVar(&c.amount, "amount", "", "Amount to send.")
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snap, err := ledger.Transfer(ctx, c.to, c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(ledger.Account(), snap))
	return subcommands.ExitSuccess
}
