package orderbook

import (
	"container/list"

	"github.com/google/btree"
)

const levelTreeDegree = 32

// priceLevelItem adapts *PriceLevel for ordering inside a btree.BTree keyed
// by price. Grounded on the pack's vegaprotocol-vega mbook.go, which keys an
// identical order-book side the same way.
type priceLevelItem struct {
	price uint64
	level *PriceLevel
}

func (a priceLevelItem) Less(than btree.Item) bool {
	return a.price < than.(priceLevelItem).price
}

// Trade is one fill produced by an aggressive match: the resting order that
// was hit, how much of it traded, and at what price.
type Trade struct {
	MakerOrderID uint64
	Quantity     uint64
	Price        uint64
}

// handle is what the order index holds to reach a resting order in O(1):
// the level it rests on and its node inside that level's FIFO.
type handle struct {
	level *PriceLevel
	elem  *list.Element
}

// BookSide is a price-ordered map of PriceLevels for one side of the book.
// Invariant: every PriceLevel present has AggregateQuantity > 0 and a
// non-empty FIFO.
type BookSide struct {
	side  Side
	tree  *btree.BTree
}

func newBookSide(side Side) *BookSide {
	return &BookSide{side: side, tree: btree.New(levelTreeDegree)}
}

func (b *BookSide) getOrCreateLevel(price uint64) *PriceLevel {
	if existing := b.tree.Get(priceLevelItem{price: price}); existing != nil {
		return existing.(priceLevelItem).level
	}
	level := newPriceLevel(price)
	b.tree.ReplaceOrInsert(priceLevelItem{price: price, level: level})
	return level
}

// add appends a new resting order to the tail of the FIFO at price,
// creating the PriceLevel if absent, and returns the handle the order index
// should retain for this order.
func (b *BookSide) add(orderID uint64, price uint64, qty uint64) handle {
	level := b.getOrCreateLevel(price)
	elem := level.fifo.PushBack(&orderNode{orderID: orderID, quantity: qty})
	level.AggregateQuantity += qty
	return handle{level: level, elem: elem}
}

// remove unlinks h's node from its FIFO, subtracts its full quantity from
// the level aggregate, and erases the level if it becomes empty.
func (b *BookSide) remove(h handle) {
	node := h.elem.Value.(*orderNode)
	h.level.AggregateQuantity -= node.quantity
	h.level.fifo.Remove(h.elem)
	if h.level.empty() {
		b.tree.Delete(priceLevelItem{price: h.level.Price})
	}
}

// setQuantity adjusts h's resting quantity (an Execute decrementing it).
// If the new quantity is zero the node is unlinked and the level erased if
// it becomes empty.
func (b *BookSide) setQuantity(h handle, newQty uint64) {
	node := h.elem.Value.(*orderNode)
	h.level.AggregateQuantity = h.level.AggregateQuantity - node.quantity + newQty
	node.quantity = newQty
	if newQty == 0 {
		h.level.fifo.Remove(h.elem)
		if h.level.empty() {
			b.tree.Delete(priceLevelItem{price: h.level.Price})
		}
	}
}

// bestPrice returns this side's best (highest for Bid, lowest for Ask)
// price and its aggregate quantity.
func (b *BookSide) bestPrice() (price, qty uint64, ok bool) {
	var item btree.Item
	if b.side == Bid {
		item = b.tree.Max()
	} else {
		item = b.tree.Min()
	}
	if item == nil {
		return 0, 0, false
	}
	level := item.(priceLevelItem).level
	return level.Price, level.AggregateQuantity, true
}

// LevelSnapshot is one (price, aggregate quantity) entry of a depth query.
type LevelSnapshot struct {
	Price             uint64
	AggregateQuantity uint64
}

// depth returns the top-k price levels, in best-first order (descending for
// Bid, ascending for Ask). Levels with zero aggregate are never present.
func (b *BookSide) depth(k int) []LevelSnapshot {
	out := make([]LevelSnapshot, 0, k)
	if k <= 0 {
		return out
	}
	visit := func(item btree.Item) bool {
		level := item.(priceLevelItem).level
		out = append(out, LevelSnapshot{Price: level.Price, AggregateQuantity: level.AggregateQuantity})
		return len(out) < k
	}
	if b.side == Bid {
		b.tree.Descend(visit)
	} else {
		b.tree.Ascend(visit)
	}
	return out
}

// matchAtBest consumes this side's resting liquidity from best price
// outward, FIFO within each level, to fill an aggressive incoming quantity.
// Returns the trades produced and the total quantity filled.
func (b *BookSide) matchAtBest(incomingQty uint64) ([]Trade, uint64) {
	var trades []Trade
	var filled uint64

	for incomingQty > 0 {
		var item btree.Item
		if b.side == Bid {
			item = b.tree.Max()
		} else {
			item = b.tree.Min()
		}
		if item == nil {
			break
		}
		level := item.(priceLevelItem).level

		for incomingQty > 0 {
			front := level.fifo.Front()
			if front == nil {
				break
			}
			node := front.Value.(*orderNode)

			tradeQty := node.quantity
			if incomingQty < tradeQty {
				tradeQty = incomingQty
			}

			trades = append(trades, Trade{MakerOrderID: node.orderID, Quantity: tradeQty, Price: level.Price})

			node.quantity -= tradeQty
			level.AggregateQuantity -= tradeQty
			incomingQty -= tradeQty
			filled += tradeQty

			if node.quantity == 0 {
				level.fifo.Remove(front)
			} else {
				break
			}
		}

		if level.empty() {
			b.tree.Delete(priceLevelItem{price: level.Price})
		}
	}

	return trades, filled
}
