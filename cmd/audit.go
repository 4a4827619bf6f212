package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/bill"
	"github.com/kathmanduwallet/wallet/renderer"
)

type auditCmd struct{}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "compare a purchase bill against a sale bill" }
func (*auditCmd) Usage() string {
	return `kw audit <purchase-file> <sale-file>

  Parses both bill files and reports missing items, price mismatches,
  and the gap between the two totals. See 'kw topic audit' for the
  accepted bill format.

Usage Examples:
$ kw audit purchase.txt sale.txt
`
}

func (*auditCmd) SetFlags(f *flag.FlagSet) {}

func (c *auditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly two bill files, a purchase and a sale.")
		return subcommands.ExitUsageError
	}

	purchaseFile, saleFile := f.Arg(0), f.Arg(1)

	purchase, perr := bill.ParseFile(purchaseFile)
	sale, serr := bill.ParseFile(saleFile)

	// Report every unreadable file at once rather than one per run.
	var unreadable []string
	if perr != nil {
		unreadable = append(unreadable, purchaseFile)
	}
	if serr != nil {
		unreadable = append(unreadable, saleFile)
	}
	if len(unreadable) > 0 {
		fmt.Fprintf(os.Stderr, "Error: could not read file(s): %s\n", strings.Join(unreadable, ", "))
		return subcommands.ExitFailure
	}

	report := bill.Reconcile(purchase, sale)
	printMarkdown(renderer.AuditMarkdown(report))

	if !report.Clean() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
