package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// Holdings renders the open lots remaining after a full replay.
func Holdings(report *capgains.HoldingReport) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Open Holdings\n\n")

	if len(report.Symbols) == 0 {
		fmt.Fprintln(&b, "No open lots.")
		return b.String()
	}

	for _, holding := range report.Symbols {
		fmt.Fprintf(&b, "## %s (%s open)\n\n", holding.Symbol, holding.Position)
		fmt.Fprintln(&b, "| Acquired | Remaining | Of | Rate | Remaining Fee |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		for _, lot := range holding.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				lot.Date,
				lot.Remaining,
				lot.Original,
				lot.Price,
				lot.RemainingFee,
			)
		}
		fmt.Fprintln(&b)
	}

	return b.String()
}
