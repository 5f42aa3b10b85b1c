package capgains

import (
	"fmt"
	"time"
)

// GainsReport contains the results of a realized capital gains calculation
// for one reporting year.
type GainsReport struct {
	Year     int    `json:"year"`
	Currency string `json:"currency"`
	Total    Money  `json:"total"` // Total is the cumulative realized gain, negative for a net loss.
	Sales    []Sale `json:"sales"` // Sales holds one audit row per sell in the reporting year, in order.
}

// Sale is the audit record of a single disposal in the reporting year.
type Sale struct {
	Time     time.Time `json:"time"`
	Symbol   string    `json:"symbol"`
	Quantity Quantity  `json:"quantity"`
	Price    Money     `json:"price"` // unit price at sale
	Gain     Money     `json:"gain"`  // realized gain of this sale, signed
}

// RealizedGains replays the journal through a fresh ledger and computes the
// realized gain for the requested reporting year.
//
// Every sell mutates the ledger regardless of its year; only the
// contribution to the total and the audit row are gated on the year. The
// final ledger is returned so callers can inspect the remaining open lots.
func (j *Journal) RealizedGains(year int, currency string) (*GainsReport, *Ledger, error) {
	report := &GainsReport{
		Year:     year,
		Currency: currency,
		Total:    M(0, currency),
		Sales:    []Sale{},
	}

	ledger := NewLedger()
	for e := range j.Events() {
		switch e.Side {
		case Buy:
			ledger.Append(newLot(e))
		case Sell:
			gain, err := ledger.Consume(e)
			if err != nil {
				return nil, nil, fmt.Errorf("on %s: %w", e.Time.Format(DatetimeFormat), err)
			}
			if e.Year() != year {
				continue
			}
			report.Total = report.Total.Add(gain)
			report.Sales = append(report.Sales, Sale{
				Time:     e.Time,
				Symbol:   e.Symbol,
				Quantity: e.Quantity,
				Price:    e.Price,
				Gain:     gain,
			})
		}
	}

	return report, ledger, nil
}
