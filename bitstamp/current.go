package bitstamp

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
	"github.com/shopspring/decimal"
)

// currentSchema is the 2022 export revision: every value carries its
// currency in a dedicated column, e.g. "Amount" and "Amount currency".
type currentSchema struct {
	subType        int
	datetime       int
	amount         int
	amountCurrency int
	rate           int
	rateCurrency   int
	fee            int
}

func newCurrentSchema(columns map[string]int) (*currentSchema, error) {
	s := &currentSchema{}
	required := map[string]*int{
		"Subtype":         &s.subType,
		"Datetime":        &s.datetime,
		"Amount":          &s.amount,
		"Amount currency": &s.amountCurrency,
		"Rate":            &s.rate,
		"Rate currency":   &s.rateCurrency,
		"Fee":             &s.fee,
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

func (s *currentSchema) normalize(record []string) (capgains.Event, bool, error) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	// Non-trade rows (deposits, withdrawals...) have no rate. Skip them
	// early, they carry nothing the replay can use.
	if field(s.rate) == "" || field(s.amount) == "" {
		return capgains.Event{}, false, nil
	}

	when, err := parseDatetime(field(s.datetime))
	if err != nil {
		return capgains.Event{}, false, err
	}

	quantity, err := parseDecimal(field(s.amount), "amount")
	if err != nil {
		return capgains.Event{}, false, err
	}

	rate, err := parseDecimal(field(s.rate), "rate")
	if err != nil {
		return capgains.Event{}, false, err
	}

	// An absent fee means the exchange charged none.
	fee := decimal.Zero
	if f := field(s.fee); f != "" {
		fee, err = parseDecimal(f, "fee")
		if err != nil {
			return capgains.Event{}, false, err
		}
	}

	currency := field(s.rateCurrency)
	return capgains.Event{
		Time:     when,
		Symbol:   field(s.amountCurrency),
		Side:     side(field(s.subType)),
		Quantity: capgains.Q(quantity).Round8(),
		Price:    capgains.M(rate, currency).Round8(),
		Fee:      capgains.M(fee, currency),
	}, true, nil
}
