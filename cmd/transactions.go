package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	file string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list normalized transactions in replay order" }
func (*transactionsCmd) Usage() string {
	return `cgt transactions [-i <file>]

  Normalizes the transaction export and prints the events in the
  chronological order the gains computation replays them.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "Transactions.csv", "Transactions export file")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ApplyVerbosity()
	journal, err := readJournal(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Transactions(journal))
	return subcommands.ExitSuccess
}
