// Package bitstamp normalizes Bitstamp CSV transaction exports into
// capgains events.
//
// Two historical export schemas are supported, detected from the header
// row: the legacy export combines quantity and symbol in one "Amount"
// column, the current export carries a separate currency column per value.
// Files matching neither schema are rejected with ErrUnsupportedFormat.
package bitstamp

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/etnz/capgains"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedFormat is returned when the file header matches none of the
// recognized Bitstamp export schemas.
var ErrUnsupportedFormat = errors.New("bitstamp: file does not look like a Bitstamp transactions export")

// ErrMalformedField is wrapped by errors returned for rows whose numeric
// fields cannot be parsed. Such rows abort the whole run: a silently skipped
// trade would corrupt every later FIFO match.
var ErrMalformedField = errors.New("bitstamp: malformed field")

// Datetime layouts across export generations.
const (
	legacyDatetimeLayout  = "Jan. 02, 2006, 03:04 PM"
	currentDatetimeLayout = time.RFC3339
)

// Read parses a Bitstamp CSV export and returns the normalized events in
// file order. Quantities and unit prices are rounded to 8 decimal places,
// fees keep their full precision.
func Read(r io.Reader) ([]capgains.Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // schemas differ in column count

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("bitstamp: cannot read header: %w", err)
	}

	schema, err := detect(header)
	if err != nil {
		return nil, err
	}

	var events []capgains.Event
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bitstamp: line %d: %w", line, err)
		}
		event, ok, err := schema.normalize(record)
		if err != nil {
			return nil, fmt.Errorf("bitstamp: line %d: %w", line, err)
		}
		if !ok {
			log.Printf("bitstamp: skipping line %d: not a normalizable trade row", line)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

// normalizer maps one raw record of a specific schema to a normalized
// event. The second return value is false for rows to skip.
type normalizer interface {
	normalize(record []string) (capgains.Event, bool, error)
}

// detect picks the schema from the header columns, or fails with
// ErrUnsupportedFormat.
func detect(header []string) (normalizer, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	if _, ok := columns["Amount currency"]; ok {
		return newCurrentSchema(columns)
	}
	if _, ok := columns["Sub Type"]; ok {
		if _, ok := columns["Amount"]; ok {
			return newLegacySchema(columns)
		}
	}
	return nil, ErrUnsupportedFormat
}

// side maps a Bitstamp sub type to an event side. Deposits, withdrawals,
// staking rewards and the like are carried as ignored events.
func side(subType string) capgains.Side {
	switch strings.TrimSpace(subType) {
	case "Buy":
		return capgains.Buy
	case "Sell":
		return capgains.Sell
	default:
		return capgains.Ignored
	}
}

// parseDecimal parses a numeric field, tagging failures as malformed.
func parseDecimal(field, name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(field))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s %q", ErrMalformedField, name, field)
	}
	return d, nil
}

// parseDatetime tries the known Bitstamp datetime layouts.
func parseDatetime(field string) (time.Time, error) {
	field = strings.TrimSpace(field)
	if t, err := time.Parse(currentDatetimeLayout, field); err == nil {
		return t, nil
	}
	if t, err := time.Parse(legacyDatetimeLayout, field); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: datetime %q", ErrMalformedField, field)
}
