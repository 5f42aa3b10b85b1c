// Package renderer turns capgains reports into markdown suitable for
// terminal rendering or plain inclusion in documents.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// Gains renders a realized gains report to a markdown string with one audit
// row per sale of the reporting year.
func Gains(report *capgains.GainsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Capital Gains %d\n\n", report.Year)

	fmt.Fprintln(&b, "| Date | Transaction | Symbol | Amount | Rate | Profit |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, sale := range report.Sales {
		fmt.Fprintf(&b, "| %s | Sell | %s | %s | %s | %s |\n",
			sale.Time.Format(capgains.DateFormat),
			sale.Symbol,
			sale.Quantity,
			sale.Price,
			sale.Gain.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | | **%s** |\n", "Total", report.Total.SignedString())

	fmt.Fprintf(&b, "\nSummary gain (negative is loss): %s\n", report.Total.SignedString())

	return b.String()
}
