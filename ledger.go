package capgains

import (
	"iter"
	"maps"
	"slices"
)

// Ledger maps each symbol to the FIFO queue of its open lots.
//
// A Ledger is owned by the single replay that created it: there is no
// process-wide holdings state, callers construct one, drive it, and inspect
// the result.
type Ledger struct {
	holdings map[string]*lots
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{holdings: make(map[string]*lots)}
}

// queue returns the lot queue for the symbol, creating it lazily.
func (l *Ledger) queue(symbol string) *lots {
	q, ok := l.holdings[symbol]
	if !ok {
		q = &lots{}
		l.holdings[symbol] = q
	}
	return q
}

// Append pushes an open lot to the tail of its symbol's queue.
func (l *Ledger) Append(lot *Lot) {
	q := l.queue(lot.Symbol)
	*q = append(*q, lot)
}

// PeekOldest returns the head of the symbol's queue without removing it, or
// nil when no lots are open.
func (l *Ledger) PeekOldest(symbol string) *Lot {
	q, ok := l.holdings[symbol]
	if !ok || len(*q) == 0 {
		return nil
	}
	return (*q)[0]
}

// PopOldest removes and returns the head of the symbol's queue, or nil when
// no lots are open.
func (l *Ledger) PopOldest(symbol string) *Lot {
	q, ok := l.holdings[symbol]
	if !ok || len(*q) == 0 {
		return nil
	}
	oldest := (*q)[0]
	*q = (*q)[1:]
	return oldest
}

// IsEmpty reports whether the symbol has no open lots.
func (l *Ledger) IsEmpty(symbol string) bool {
	q, ok := l.holdings[symbol]
	return !ok || len(*q) == 0
}

// Position returns the total open quantity for the symbol.
func (l *Ledger) Position(symbol string) Quantity {
	var total Quantity
	if q, ok := l.holdings[symbol]; ok {
		for _, lot := range *q {
			total = total.Add(lot.Remaining)
		}
	}
	return total
}

// Symbols returns an iterator over the symbols holding at least one open
// lot, in lexical order.
func (l *Ledger) Symbols() iter.Seq[string] {
	keys := slices.Collect(maps.Keys(l.holdings))
	slices.Sort(keys)
	return func(yield func(string) bool) {
		for _, s := range keys {
			if l.IsEmpty(s) {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Lots returns an iterator over the symbol's open lots, oldest first.
func (l *Ledger) Lots(symbol string) iter.Seq[*Lot] {
	return func(yield func(*Lot) bool) {
		q, ok := l.holdings[symbol]
		if !ok {
			return
		}
		for _, lot := range *q {
			if !yield(lot) {
				return
			}
		}
	}
}

// Consume matches a sell event against its symbol's queue, oldest lot
// first, and returns the realized gain. The queue is created lazily, so a
// sell on a never-bought symbol fails with InsufficientHoldingsError.
func (l *Ledger) Consume(sale Event) (Money, error) {
	return l.queue(sale.Symbol).consume(sale)
}
