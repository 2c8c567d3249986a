package orderbook

// Book composes both sides of the market and the order index, and exposes
// the side-agnostic API the engine dispatches onto: Add, Cancel, Execute,
// Replace, and the aggressive-cross primitive. Aggressive takes route to
// the side opposite the taker.
type Book struct {
	bids   *BookSide
	asks   *BookSide
	index  *OrderIndex
	orders map[uint64]*Order
}

// New returns an empty Book.
func New() *Book {
	return &Book{
		bids:   newBookSide(Bid),
		asks:   newBookSide(Ask),
		index:  newOrderIndex(),
		orders: make(map[uint64]*Order),
	}
}

func (b *Book) side(s Side) *BookSide {
	if s == Bid {
		return b.bids
	}
	return b.asks
}

// Add inserts a new resting order. Returns false without mutating state if
// order_id already has a live entry.
func (b *Book) Add(orderID uint64, side Side, price uint32, quantity uint32, timestamp uint64) (Order, bool) {
	if b.index.has(orderID) {
		return Order{}, false
	}

	h := b.side(side).add(orderID, uint64(price), uint64(quantity))

	order := &Order{
		OrderID:   orderID,
		Price:     price,
		Remaining: quantity,
		Side:      side,
		Timestamp: timestamp,
		Active:    true,
	}
	b.orders[orderID] = order
	b.index.put(orderID, &indexEntry{side: side, price: uint64(price), quantity: uint64(quantity), h: h})

	return *order, true
}

// Cancel fully cancels a live order. Returns the order's final snapshot
// (Active=false, as the snapshot is taken after deactivation and before
// erasure — see SPEC_FULL.md §C) and true on success; false if order_id is
// not live.
func (b *Book) Cancel(orderID uint64) (Order, bool) {
	entry, ok := b.index.get(orderID)
	if !ok {
		return Order{}, false
	}
	order, ok := b.orders[orderID]
	if !ok {
		return Order{}, false
	}

	b.side(entry.side).remove(entry.h)
	b.index.delete(orderID)

	order.Active = false
	snapshot := *order
	delete(b.orders, orderID)

	return snapshot, true
}

// Execute reduces a live order's remaining quantity by qty. If the order is
// missing, inactive, or qty exceeds its remaining quantity, it is dropped
// and false is returned. The returned snapshot reflects post-mutation
// state, taken before the order record is erased on a full fill (so the
// caller can observe the final quantity and Active flag).
func (b *Book) Execute(orderID uint64, qty uint32) (Order, bool) {
	entry, ok := b.index.get(orderID)
	if !ok {
		return Order{}, false
	}
	order, ok := b.orders[orderID]
	if !ok || !order.Active || uint64(qty) > entry.quantity {
		return Order{}, false
	}

	newQty := entry.quantity - uint64(qty)
	b.side(entry.side).setQuantity(entry.h, newQty)
	entry.quantity = newQty
	order.Remaining -= qty

	fullyFilled := newQty == 0
	if fullyFilled {
		order.Active = false
	}

	snapshot := *order

	if fullyFilled {
		b.index.delete(orderID)
		delete(b.orders, orderID)
	}

	return snapshot, true
}

// Replace atomically cancels originalOrderID and adds newOrderID at
// newPrice/newQuantity, carrying over the original order's side and
// timestamp. If the original does not exist or is inactive, the whole
// Replace is dropped. If newOrderID already has a live entry, the cancel of
// the original has already taken effect but the Add is refused — this
// mirrors original_source's behavior exactly (see SPEC_FULL.md §C) and is
// flagged there for product review.
func (b *Book) Replace(originalOrderID, newOrderID uint64, newPrice, newQuantity uint32) (Order, bool) {
	entry, ok := b.index.get(originalOrderID)
	if !ok {
		return Order{}, false
	}
	original, ok := b.orders[originalOrderID]
	if !ok || !original.Active {
		return Order{}, false
	}

	side := original.Side
	timestamp := original.Timestamp

	b.side(entry.side).remove(entry.h)
	b.index.delete(originalOrderID)
	delete(b.orders, originalOrderID)

	return b.Add(newOrderID, side, newPrice, newQuantity, timestamp)
}

// AggressiveMatch walks the side opposite takingSide from best price
// outward, FIFO within each level, filling up to quantity. It reconciles
// the order index and Order records of every maker it fills, and emits no
// Add/Cancel/Execute/Replace observer event — the trade vector is the sole
// output.
func (b *Book) AggressiveMatch(takingSide Side, quantity uint64) ([]Trade, uint64) {
	opposite := Ask
	if takingSide == Ask {
		opposite = Bid
	}
	trades, filled := b.side(opposite).matchAtBest(quantity)

	// matchAtBest mutated PriceLevel/FIFO state directly; reconcile the
	// order index and Order records for every maker node it fully drained
	// or partially filled.
	for _, t := range trades {
		entry, ok := b.index.get(t.MakerOrderID)
		if !ok {
			continue
		}
		order := b.orders[t.MakerOrderID]
		entry.quantity -= t.Quantity
		if order != nil {
			order.Remaining -= uint32(t.Quantity)
		}
		if entry.quantity == 0 {
			b.index.delete(t.MakerOrderID)
			delete(b.orders, t.MakerOrderID)
		}
	}

	return trades, filled
}

// BestBid returns the highest bid price and its aggregate quantity.
func (b *Book) BestBid() (price, qty uint64, ok bool) { return b.bids.bestPrice() }

// BestAsk returns the lowest ask price and its aggregate quantity.
func (b *Book) BestAsk() (price, qty uint64, ok bool) { return b.asks.bestPrice() }

// Spread returns best_ask - best_bid, or false if either side is empty or
// the book is crossed/locked (ask <= bid).
func (b *Book) Spread() (spread uint64, ok bool) {
	bidPrice, _, bidOK := b.bids.bestPrice()
	askPrice, _, askOK := b.asks.bestPrice()
	if !bidOK || !askOK || askPrice <= bidPrice {
		return 0, false
	}
	return askPrice - bidPrice, true
}

// Depth returns the top-k price levels for bids (descending) and asks
// (ascending).
func (b *Book) Depth(k int) (bids, asks []LevelSnapshot) {
	return b.bids.depth(k), b.asks.depth(k)
}

// FindOrder returns a live order's snapshot, or false if it is absent or
// inactive.
func (b *Book) FindOrder(orderID uint64) (Order, bool) {
	order, ok := b.orders[orderID]
	if !ok || !order.Active {
		return Order{}, false
	}
	return *order, true
}

// OrderCount returns the number of order records currently tracked
// (equivalently, the order index cardinality during normal dispatch).
func (b *Book) OrderCount() int { return len(b.orders) }

// ActiveOrderCount returns the number of currently-active orders.
func (b *Book) ActiveOrderCount() int {
	count := 0
	for _, o := range b.orders {
		if o.Active {
			count++
		}
	}
	return count
}

// Orders returns a snapshot slice of every order record currently tracked,
// for diagnostic dumps (SPEC_FULL.md §C).
func (b *Book) Orders() []Order {
	out := make([]Order, 0, len(b.orders))
	for _, o := range b.orders {
		out = append(out, *o)
	}
	return out
}
