package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

const sampleExport = `Type,Datetime,Account,Amount,Value,Rate,Fee,Sub Type
Market,"Jan. 02, 2018, 09:02 PM",Main Account,1.00000000 BTC,2000.00 EUR,2000.00 EUR,10.00 EUR,Buy
Market,"Jun. 10, 2018, 11:20 AM",Main Account,1.00000000 BTC,2000.00 EUR,2000.00 EUR,10.00 EUR,Sell
`

func writeExport(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "Transactions.csv")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("cannot write sample export: %v", err)
	}
	return file
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("cannot parse flags: %v", err)
	}
	return c.Execute(context.Background(), f)
}

func TestGainsCmd(t *testing.T) {
	file := writeExport(t, sampleExport)
	if got := run(t, &gainsCmd{}, "-i", file, "-y", "2018"); got != subcommands.ExitSuccess {
		t.Errorf("gains exit = %v, want success", got)
	}
}

func TestGainsCmd_JSON(t *testing.T) {
	file := writeExport(t, sampleExport)
	if got := run(t, &gainsCmd{}, "-i", file, "-y", "2018", "-json"); got != subcommands.ExitSuccess {
		t.Errorf("gains -json exit = %v, want success", got)
	}
}

func TestGainsCmd_MissingFile(t *testing.T) {
	if got := run(t, &gainsCmd{}, "-i", "does-not-exist.csv", "-y", "2018"); got != subcommands.ExitFailure {
		t.Errorf("gains exit = %v, want failure", got)
	}
}

func TestGainsCmd_InvalidYear(t *testing.T) {
	file := writeExport(t, sampleExport)
	if got := run(t, &gainsCmd{}, "-i", file, "-y", "18"); got != subcommands.ExitUsageError {
		t.Errorf("gains exit = %v, want usage error", got)
	}
}

func TestGainsCmd_Oversold(t *testing.T) {
	oversold := `Type,Datetime,Account,Amount,Value,Rate,Fee,Sub Type
Market,"Jun. 10, 2018, 11:20 AM",Main Account,1.00000000 BTC,2000.00 EUR,2000.00 EUR,10.00 EUR,Sell
`
	file := writeExport(t, oversold)
	if got := run(t, &gainsCmd{}, "-i", file, "-y", "2018"); got != subcommands.ExitFailure {
		t.Errorf("gains exit = %v, want failure on oversold position", got)
	}
}

func TestGainsCmd_UnsupportedFormat(t *testing.T) {
	file := writeExport(t, "Date,Open,High,Low,Close\n")
	if got := run(t, &gainsCmd{}, "-i", file, "-y", "2018"); got != subcommands.ExitFailure {
		t.Errorf("gains exit = %v, want failure on unsupported format", got)
	}
}

func TestHoldingsCmd(t *testing.T) {
	file := writeExport(t, sampleExport)
	if got := run(t, &holdingsCmd{}, "-i", file); got != subcommands.ExitSuccess {
		t.Errorf("holdings exit = %v, want success", got)
	}
}

func TestTransactionsCmd(t *testing.T) {
	file := writeExport(t, sampleExport)
	if got := run(t, &transactionsCmd{}, "-i", file); got != subcommands.ExitSuccess {
		t.Errorf("transactions exit = %v, want success", got)
	}
}
