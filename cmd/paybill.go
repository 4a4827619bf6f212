package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/renderer"
)

type paybillCmd struct {
	service string
	name    string
	amount  string
}

func (*paybillCmd) Name() string     { return "paybill" }
func (*paybillCmd) Synopsis() string { return "pay a service bill" }
func (*paybillCmd) Usage() string {
	return `kw paybill -service <id> [-name <display name>] [-amount <amount>]

  Pays a service bill and records a Bill transaction. The display name,
  when given, appears in the transaction label instead of the service id.
  A missing or unparsable amount is recorded as zero.

Usage Examples:
$ kw paybill -service electricity -name "City Power" -amount 89.90
`
}

func (c *paybillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.service, "service", "", "Service identifier.")
	f.StringVar(&c.name, "name", "", "Service display name.")
	f.StringVar(&c.amount, "amount", "", "Amount to pay.")
}

func (c *paybillCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	snap, err := ledger.PayBill(ctx, c.service, c.name, c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SnapshotMarkdown(ledger.Account(), snap))
	return subcommands.ExitSuccess
}
