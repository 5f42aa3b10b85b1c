// Package cmd implements the CLI application to compute realized capital
// gains from exchange transaction exports.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/capgains"
	"github.com/etnz/capgains/bitstamp"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&gainsCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&transactionsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("currency", "EUR", "Reporting currency of the transaction export")
var Verbose = flag.Bool("v", false, "Verbose logging")

func init() {
	// Verbose-only logging: normalizers log skipped rows through the
	// default logger.
	log.SetOutput(io.Discard)
	log.SetFlags(0)
}

// ApplyVerbosity must be called after flag parsing to honor -v.
func ApplyVerbosity() {
	if *Verbose {
		log.SetOutput(os.Stderr)
	}
}

// readJournal opens the transactions file, normalizes it and returns the
// chronologically sorted journal.
func readJournal(filename string) (*capgains.Journal, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file %q: %w", filename, err)
	}
	defer f.Close()

	events, err := bitstamp.Read(f)
	if err != nil {
		return nil, err
	}
	return capgains.NewJournal(events)
}

// printMarkdown renders markdown to stdout through glamour, falling back to
// the raw markdown when rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
