package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kathmanduwallet/wallet/directory"
)

type recipientsCmd struct {
	limit int
	skip  int
}

func (*recipientsCmd) Name() string     { return "recipients" }
func (*recipientsCmd) Synopsis() string { return "list transfer recipients" }
func (*recipientsCmd) Usage() string {
	return `kw recipients [-limit <n>] [-skip <n>]

  Lists people you can transfer money to. The directory is fetched over
  HTTP and cached on disk for the rest of the day.

Usage Examples:
$ kw recipients -limit 10
$ kw recipients -limit 10 -skip 10
`
}

func (c *recipientsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "limit", 10, "Maximum number of recipients to list.")
	f.IntVar(&c.skip, "skip", 0, "Number of recipients to skip, for paging.")
}

func (c *recipientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client := directory.NewClient()
	recipients, total, err := client.Fetch(c.limit, c.skip)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error fetching recipients:", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Recipients (%d-%d of %d)\n\n", c.skip+1, c.skip+len(recipients), total)
	fmt.Fprintln(&b, "| Id | Name | Email |")
	fmt.Fprintln(&b, "|---:|------|-------|")
	for _, r := range recipients {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", r.ID, r.Name, r.Email)
	}
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
