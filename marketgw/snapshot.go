package main

import "github.com/matchcore/engine/engine"

// snapshotLevel is one (price, aggregate_quantity) entry in a depth
// snapshot, JSON-tagged for the websocket wire format.
type snapshotLevel struct {
	Price    uint64 `json:"price"`
	Quantity uint64 `json:"quantity"`
}

// snapshot is the market-data payload pushed to every connected client
// whenever the engine's observer fires — the external read-side of
// spec.md §4.6's query surface.
type snapshot struct {
	BestBid *snapshotLevel  `json:"best_bid,omitempty"`
	BestAsk *snapshotLevel  `json:"best_ask,omitempty"`
	Spread  *uint64         `json:"spread,omitempty"`
	Bids    []snapshotLevel `json:"bids"`
	Asks    []snapshotLevel `json:"asks"`
}

const defaultDepth = 10

func buildSnapshot(eng *engine.Engine) snapshot {
	var s snapshot

	if price, qty, ok := eng.BestBid(); ok {
		s.BestBid = &snapshotLevel{Price: price, Quantity: qty}
	}
	if price, qty, ok := eng.BestAsk(); ok {
		s.BestAsk = &snapshotLevel{Price: price, Quantity: qty}
	}
	if spread, ok := eng.Spread(); ok {
		s.Spread = &spread
	}

	bids, asks := eng.Depth(defaultDepth)
	s.Bids = make([]snapshotLevel, len(bids))
	for i, lvl := range bids {
		s.Bids[i] = snapshotLevel{Price: lvl.Price, Quantity: lvl.AggregateQuantity}
	}
	s.Asks = make([]snapshotLevel, len(asks))
	for i, lvl := range asks {
		s.Asks[i] = snapshotLevel{Price: lvl.Price, Quantity: lvl.AggregateQuantity}
	}

	return s
}
