package capgains

import (
	"fmt"
	"time"
)

// Side is a typed string identifying the direction of a trade event.
type Side string

// Sides recognized by the replay. Anything else is carried through the
// journal but ignored by the gains computation.
const (
	Buy     Side = "buy"
	Sell    Side = "sell"
	Ignored Side = "ignored"
)

// Event is a single normalized trade event, the canonical record every
// ingestion schema is mapped to.
type Event struct {
	Time     time.Time // Time is the moment the trade was executed.
	Symbol   string    // Symbol is the asset identifier, e.g. "BTC".
	Side     Side      // Side is the direction of the trade.
	Quantity Quantity  // Quantity is the amount of the asset traded, always positive.
	Price    Money     // Price is the unit price at execution.
	Fee      Money     // Fee is the exchange fee charged on this trade.
}

// Year returns the reporting year the event falls into.
func (e Event) Year() int { return e.Time.Year() }

// Validate checks the event for correctness before it enters a journal.
func (e Event) Validate() error {
	if e.Symbol == "" {
		return fmt.Errorf("event on %s has no symbol", e.Time.Format(DatetimeFormat))
	}
	if e.Side != Buy && e.Side != Sell {
		return nil // nothing else to check on ignored events
	}
	if !e.Quantity.IsPositive() {
		return fmt.Errorf("%s event on %s: quantity must be positive, got %s", e.Side, e.Time.Format(DatetimeFormat), e.Quantity)
	}
	if !e.Price.IsPositive() {
		return fmt.Errorf("%s event on %s: price must be positive, got %s", e.Side, e.Time.Format(DatetimeFormat), e.Price)
	}
	if e.Fee.IsNegative() {
		return fmt.Errorf("%s event on %s: fee cannot be negative, got %s", e.Side, e.Time.Format(DatetimeFormat), e.Fee)
	}
	return nil
}
