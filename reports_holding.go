package capgains

import "fmt"

// HoldingReport lists the lots still open after replaying a whole journal.
type HoldingReport struct {
	Currency string
	Symbols  []SymbolHolding
}

// SymbolHolding is the open position of a single symbol.
type SymbolHolding struct {
	Symbol   string
	Position Quantity
	Lots     []*Lot // oldest first
}

// Holdings replays the full journal and reports the open position per
// symbol. Sells consume lots exactly as in the gains computation, so an
// oversold position fails here too.
func (j *Journal) Holdings(currency string) (*HoldingReport, error) {
	ledger := NewLedger()
	for e := range j.Events() {
		switch e.Side {
		case Buy:
			ledger.Append(newLot(e))
		case Sell:
			if _, err := ledger.Consume(e); err != nil {
				return nil, fmt.Errorf("on %s: %w", e.Time.Format(DatetimeFormat), err)
			}
		}
	}

	report := &HoldingReport{Currency: currency}
	for symbol := range ledger.Symbols() {
		holding := SymbolHolding{Symbol: symbol, Position: ledger.Position(symbol)}
		for lot := range ledger.Lots(symbol) {
			holding.Lots = append(holding.Lots, lot)
		}
		report.Symbols = append(report.Symbols, holding)
	}
	return report, nil
}
