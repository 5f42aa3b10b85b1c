package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	file string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "open lots remaining after replaying all transactions" }
func (*holdingsCmd) Usage() string {
	return `cgt holdings [-i <file>]

  Replays the whole transaction export and prints the lots still open per
  symbol, oldest first, with the fee share still attached to each lot.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "Transactions.csv", "Transactions export file")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ApplyVerbosity()
	journal, err := readJournal(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := journal.Holdings(*defaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Holdings(report))
	return subcommands.ExitSuccess
}
