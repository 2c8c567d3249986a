package main

import (
	"testing"

	"github.com/matchcore/engine/wire"
)

func TestEncodeAddRoundTripsThroughParser(t *testing.T) {
	buf := encodeAdd(1000000, 12345, 'B', 50, 10000)
	r := wire.Parse(buf)
	if r.Status != wire.StatusComplete || r.Kind != wire.Add {
		t.Fatalf("expected a complete Add, got %+v", r)
	}
	if r.Add.OrderID != 12345 || r.Add.Side != 'B' || r.Add.Quantity != 50 || r.Add.Price != 10000 {
		t.Fatalf("unexpected decoded fields: %+v", r.Add)
	}
	if r.Add.Timestamp != 1000000 {
		t.Fatalf("expected timestamp round-trip, got %d", r.Add.Timestamp)
	}
}

func TestEncodeReplaceRoundTripsThroughParser(t *testing.T) {
	buf := encodeReplace(42, 1, 2, 75, 10500)
	r := wire.Parse(buf)
	if r.Status != wire.StatusComplete || r.Kind != wire.Replace {
		t.Fatalf("expected a complete Replace, got %+v", r)
	}
	if r.Replace.OriginalOrderID != 1 || r.Replace.NewOrderID != 2 ||
		r.Replace.Quantity != 75 || r.Replace.Price != 10500 {
		t.Fatalf("unexpected decoded fields: %+v", r.Replace)
	}
}
