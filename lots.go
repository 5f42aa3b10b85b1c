package capgains

import (
	"fmt"
)

// Lot represents a single purchase of an asset, tracked until disposal.
type Lot struct {
	Symbol    string   // Symbol is the asset identifier.
	Date      Date     // Date is the acquisition date, for reporting.
	Original  Quantity // Original is the quantity purchased, fixed for the lot's life.
	Remaining Quantity // Remaining is the quantity still open, 0 <= Remaining <= Original.
	Price     Money    // Price is the purchase price per unit, fixed for the lot's life.
	Fee       Money    // Fee is the total fee paid to acquire the lot, fixed.
	// RemainingFee is the fee attributable to Remaining. It is reduced on
	// partial consumption so the open lot can be inspected, but the matching
	// formula always prorates from Original and Fee, never from this field.
	RemainingFee Money
}

// newLot creates an open lot from a buy event.
func newLot(e Event) *Lot {
	return &Lot{
		Symbol:       e.Symbol,
		Date:         DateOf(e.Time),
		Original:     e.Quantity,
		Remaining:    e.Quantity,
		Price:        e.Price,
		Fee:          e.Fee,
		RemainingFee: e.Fee,
	}
}

// lots is the FIFO queue of open lots for one symbol: head is the oldest.
type lots []*Lot

// InsufficientHoldingsError reports a sell whose quantity exceeds the open
// position for its symbol. It is fatal for the run: the gains computation
// cannot produce a result for an oversold position.
type InsufficientHoldingsError struct {
	Symbol    string
	Requested Quantity
	Shortfall Quantity
}

func (e *InsufficientHoldingsError) Error() string {
	return fmt.Sprintf("cannot sell %s %s: open holdings are short by %s", e.Requested, e.Symbol, e.Shortfall)
}

// consume matches a sale against the queue oldest-first and returns the
// realized gain: gross proceeds minus the sale fee and the matched cost
// basis. The last matched lot is split when it is larger than what is left
// of the sale. The queue is mutated to reflect consumption.
func (l *lots) consume(sale Event) (Money, error) {
	proceeds := sale.Price.Mul(sale.Quantity)
	cost := sale.Fee
	remaining := sale.Quantity

	for !remaining.IsNegligible() {
		if len(*l) == 0 {
			return Money{}, &InsufficientHoldingsError{Symbol: sale.Symbol, Requested: sale.Quantity, Shortfall: remaining}
		}
		oldest := (*l)[0]

		if remaining.GreaterThanOrEqual(oldest.Remaining) {
			// Consume the lot fully. The matched fee is the share of the
			// original fee still attributable to the lot's remaining amount.
			matchedFee := oldest.Fee.Mul(oldest.Remaining).Div(oldest.Original)
			cost = cost.Add(oldest.Price.Mul(oldest.Remaining)).Add(matchedFee)
			remaining = remaining.Sub(oldest.Remaining)
			*l = (*l)[1:]
			continue
		}

		// Consume the lot partially. The fee is always prorated against the
		// lot's original amount and original fee, so repeated partial sales
		// of the same lot stay linear.
		matchedFee := oldest.Fee.Mul(remaining).Div(oldest.Original)
		cost = cost.Add(oldest.Price.Mul(remaining)).Add(matchedFee)
		oldest.Remaining = oldest.Remaining.Sub(remaining)
		oldest.RemainingFee = oldest.RemainingFee.Sub(matchedFee)
		break
	}

	return proceeds.Sub(cost), nil
}
