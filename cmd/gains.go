package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	file string
	year int
	json bool
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized capital gains for a reporting year" }
func (*gainsCmd) Usage() string {
	return `cgt gains [-i <file>] [-y <year>] [-json]

  Replays the transaction export through FIFO lot matching and prints the
  realized gain of each sale in the reporting year, with the summary total.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "Transactions.csv", "Transactions export file")
	f.IntVar(&c.year, "y", time.Now().Year(), "Four-digit reporting year")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON instead of markdown")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ApplyVerbosity()
	if c.year < 1000 || c.year > 9999 {
		fmt.Fprintf(os.Stderr, "Invalid reporting year %d\n", c.year)
		return subcommands.ExitUsageError
	}

	journal, err := readJournal(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, _, err := journal.RealizedGains(c.year, *defaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gains: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Gains(report))
	return subcommands.ExitSuccess
}
