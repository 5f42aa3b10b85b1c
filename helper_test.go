package capgains

import "time"

// test helpers shared across the package tests.

func at(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func buy(on time.Time, symbol string, quantity, price, fee float64) Event {
	return Event{
		Time:     on,
		Symbol:   symbol,
		Side:     Buy,
		Quantity: Q(quantity),
		Price:    M(price, "EUR"),
		Fee:      M(fee, "EUR"),
	}
}

func sell(on time.Time, symbol string, quantity, price, fee float64) Event {
	e := buy(on, symbol, quantity, price, fee)
	e.Side = Sell
	return e
}

func mustJournal(events ...Event) *Journal {
	j, err := NewJournal(events)
	if err != nil {
		panic(err)
	}
	return j
}
