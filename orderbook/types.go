// Package orderbook implements the price-level book and order index: a
// pair of per-side price-ordered maps, each price holding a FIFO queue of
// resting orders, plus an order-id index giving O(1) cancel/execute/replace
// while preserving time priority at each price.
package orderbook

import "container/list"

// Side is one side of the book.
type Side uint8

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Bid {
		return "Bid"
	}
	return "Ask"
}

// Order is a live resting order. Created by Add (a Replace adds a new one),
// mutated only by Execute or an aggressive-match fill, destroyed on a full
// Execute or fill, Cancel, or as the old half of a Replace.
type Order struct {
	OrderID   uint64
	Price     uint32 // fixed-point ticks, 4 implied decimals
	Remaining uint32
	Side      Side
	Timestamp uint64 // nanoseconds, opaque to the engine
	Active    bool
}

// orderNode is one resting order in a PriceLevel's FIFO. It is owned by its
// PriceLevel and referenced exactly once, from the order index.
type orderNode struct {
	orderID  uint64
	quantity uint64
}

// PriceLevel is all resting orders at one exact price on one side. It is
// created lazily on first Add at that price and destroyed the instant its
// FIFO becomes empty — no empty PriceLevel is ever reachable from a
// BookSide.
type PriceLevel struct {
	Price             uint64
	AggregateQuantity uint64
	fifo              *list.List // of *orderNode, head = oldest
}

func newPriceLevel(price uint64) *PriceLevel {
	return &PriceLevel{Price: price, fifo: list.New()}
}

func (pl *PriceLevel) empty() bool {
	return pl.fifo.Len() == 0
}
