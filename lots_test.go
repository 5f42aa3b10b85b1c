package capgains

import (
	"errors"
	"testing"
	"time"
)

func TestConsume_FIFOOrdering(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(newLot(buy(at(2018, time.January, 1), "BTC", 1.0, 1000, 0)))
	ledger.Append(newLot(buy(at(2018, time.February, 1), "BTC", 1.0, 2000, 0)))

	// Selling 1.0 must consume the January lot entirely, leaving the
	// February lot untouched at the head.
	gain, err := ledger.Consume(sell(at(2018, time.March, 1), "BTC", 1.0, 4000, 0))
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if want := M(3000, "EUR"); !gain.Equal(want) {
		t.Errorf("Consume() gain = %s, want %s", gain, want)
	}

	head := ledger.PeekOldest("BTC")
	if head == nil {
		t.Fatal("PeekOldest() = nil, want the February lot")
	}
	if !head.Price.Equal(M(2000, "EUR")) {
		t.Errorf("head lot price = %s, want the February lot at %s", head.Price, M(2000, "EUR"))
	}
	if !head.Remaining.Equal(Q(1.0)) {
		t.Errorf("head lot remaining = %s, want 1", head.Remaining)
	}
}

func TestConsume_FullMatchBoundary(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(newLot(buy(at(2018, time.January, 1), "BTC", 0.5, 1000, 2)))
	ledger.Append(newLot(buy(at(2018, time.February, 1), "BTC", 0.5, 1500, 2)))

	// The sale exactly equals the oldest lot's remaining amount: the lot is
	// drained and removed, not left as a zero-size remainder.
	if _, err := ledger.Consume(sell(at(2018, time.March, 1), "BTC", 0.5, 2000, 0)); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	head := ledger.PeekOldest("BTC")
	if head == nil {
		t.Fatal("PeekOldest() = nil, want the February lot")
	}
	if !head.Price.Equal(M(1500, "EUR")) {
		t.Errorf("head lot price = %s, want %s", head.Price, M(1500, "EUR"))
	}
	if !ledger.Position("BTC").Equal(Q(0.5)) {
		t.Errorf("Position() = %s, want 0.5", ledger.Position("BTC"))
	}
}

func TestConsume_PartialFeeLinearity(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(newLot(buy(at(2018, time.January, 1), "BTC", 2.0, 1000, 10)))

	// Two successive partial sales of 0.5 each must both be charged
	// 0.5/2.0*10 = 2.5 of the original fee, independent of prior
	// consumptions of the same lot.
	first, err := ledger.Consume(sell(at(2018, time.February, 1), "BTC", 0.5, 1000, 0))
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	second, err := ledger.Consume(sell(at(2018, time.March, 1), "BTC", 0.5, 1000, 0))
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	// proceeds 500 - (cost 500 + fee 2.5) on both sales.
	if want := M(-2.5, "EUR"); !first.Equal(want) {
		t.Errorf("first partial gain = %s, want %s", first, want)
	}
	if !first.Equal(second) {
		t.Errorf("second partial gain = %s, want the same as the first %s", second, first)
	}

	lot := ledger.PeekOldest("BTC")
	if !lot.Remaining.Equal(Q(1.0)) {
		t.Errorf("lot remaining = %s, want 1", lot.Remaining)
	}
	if !lot.RemainingFee.Equal(M(5, "EUR")) {
		t.Errorf("lot remaining fee = %s, want %s", lot.RemainingFee, M(5, "EUR"))
	}
	// The original basis never moves.
	if !lot.Original.Equal(Q(2.0)) || !lot.Fee.Equal(M(10, "EUR")) {
		t.Errorf("lot original basis mutated: %s of fee %s", lot.Original, lot.Fee)
	}
}

func TestConsume_SaleSpanningLots(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(newLot(buy(at(2018, time.January, 1), "BTC", 1.0, 1000, 0)))
	ledger.Append(newLot(buy(at(2018, time.February, 1), "BTC", 1.0, 2000, 0)))
	ledger.Append(newLot(buy(at(2018, time.March, 1), "BTC", 1.0, 3000, 0)))

	// 2.5 consumes the first two lots fully and half of the third.
	gain, err := ledger.Consume(sell(at(2018, time.April, 1), "BTC", 2.5, 4000, 0))
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	// 10000 - (1000 + 2000 + 1500)
	if want := M(5500, "EUR"); !gain.Equal(want) {
		t.Errorf("Consume() gain = %s, want %s", gain, want)
	}
	if !ledger.Position("BTC").Equal(Q(0.5)) {
		t.Errorf("Position() = %s, want 0.5", ledger.Position("BTC"))
	}
}

func TestConsume_Oversold(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(newLot(buy(at(2018, time.January, 1), "BTC", 1.0, 1000, 0)))

	_, err := ledger.Consume(sell(at(2018, time.February, 1), "BTC", 1.5, 1000, 0))
	var insufficient *InsufficientHoldingsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Consume() error = %v, want InsufficientHoldingsError", err)
	}
	if insufficient.Symbol != "BTC" {
		t.Errorf("oversold symbol = %q, want BTC", insufficient.Symbol)
	}
	if !insufficient.Shortfall.Equal(Q(0.5)) {
		t.Errorf("oversold shortfall = %s, want 0.5", insufficient.Shortfall)
	}
}

func TestConsume_EmptyQueue(t *testing.T) {
	ledger := NewLedger()
	_, err := ledger.Consume(sell(at(2018, time.February, 1), "ETH", 1.0, 100, 0))
	var insufficient *InsufficientHoldingsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("Consume() error = %v, want InsufficientHoldingsError", err)
	}
	if !insufficient.Shortfall.Equal(Q(1.0)) {
		t.Errorf("oversold shortfall = %s, want the full sale amount", insufficient.Shortfall)
	}
}

func TestConsume_ResidueBelowEpsilon(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(newLot(buy(at(2018, time.January, 1), "BTC", 0.6, 1000, 0)))
	ledger.Append(newLot(buy(at(2018, time.February, 1), "BTC", 0.399999999, 1000, 0)))

	// The open position falls 1e-9 short of the sale, below the zero
	// threshold: the residue is absorbed, not reported as oversold.
	if _, err := ledger.Consume(sell(at(2018, time.March, 1), "BTC", 1.0, 1000, 0)); err != nil {
		t.Fatalf("Consume() error = %v, want residue below epsilon absorbed", err)
	}
	if !ledger.IsEmpty("BTC") {
		t.Errorf("IsEmpty() = false, want all lots drained")
	}
}
