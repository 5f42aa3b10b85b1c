package bitstamp

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
	"github.com/shopspring/decimal"
)

// legacySchema is the pre-2022 export: "Type, Datetime, Account, Amount,
// Value, Rate, Fee, Sub Type", with amounts written as "0.50000000 BTC" and
// prices as "2000.00 EUR".
type legacySchema struct {
	datetime int
	amount   int
	rate     int
	fee      int
	subType  int
}

func newLegacySchema(columns map[string]int) (*legacySchema, error) {
	s := &legacySchema{datetime: -1, amount: -1, rate: -1, fee: -1, subType: -1}
	required := map[string]*int{
		"Datetime": &s.datetime,
		"Amount":   &s.amount,
		"Rate":     &s.rate,
		"Fee":      &s.fee,
		"Sub Type": &s.subType,
	}
	for name, idx := range required {
		i, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrUnsupportedFormat, name)
		}
		*idx = i
	}
	return s, nil
}

func (s *legacySchema) normalize(record []string) (capgains.Event, bool, error) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	// Non-trade rows (deposits, withdrawals...) have no rate. Skip them
	// early, they carry nothing the replay can use.
	if field(s.rate) == "" {
		return capgains.Event{}, false, nil
	}

	// "0.50000000 BTC": quantity and symbol separated by a single space.
	// Rows without the separator carry no tradable amount and are skipped.
	quantityField, symbol, ok := strings.Cut(field(s.amount), " ")
	if !ok {
		return capgains.Event{}, false, nil
	}

	when, err := parseDatetime(field(s.datetime))
	if err != nil {
		return capgains.Event{}, false, err
	}

	quantity, err := parseDecimal(quantityField, "amount")
	if err != nil {
		return capgains.Event{}, false, err
	}

	// "2000.00 EUR": the currency suffix names the fiat side of the pair.
	rateField, currency, _ := strings.Cut(field(s.rate), " ")
	rate, err := parseDecimal(rateField, "rate")
	if err != nil {
		return capgains.Event{}, false, err
	}

	// An absent fee means the exchange charged none.
	fee := decimal.Zero
	if f := field(s.fee); f != "" {
		feeField, _, _ := strings.Cut(f, " ")
		fee, err = parseDecimal(feeField, "fee")
		if err != nil {
			return capgains.Event{}, false, err
		}
	}

	return capgains.Event{
		Time:     when,
		Symbol:   symbol,
		Side:     side(field(s.subType)),
		Quantity: capgains.Q(quantity).Round8(),
		Price:    capgains.M(rate, currency).Round8(),
		Fee:      capgains.M(fee, currency),
	}, true, nil
}
