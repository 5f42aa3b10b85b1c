package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// Transactions renders a journal's events as a markdown table, in replay order.
func Transactions(journal *capgains.Journal) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Datetime | Side | Symbol | Amount | Rate | Fee |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for e := range journal.Events() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			e.Time.Format(capgains.DatetimeFormat),
			e.Side,
			e.Symbol,
			e.Quantity,
			e.Price,
			e.Fee,
		)
	}

	return b.String()
}
