// Package engine owns the ingress Fifo, the reassembly buffer, the book
// and order index, and dispatches every decoded wire message onto them. It
// is the single-writer core spec'd as "process()" — no blocking I/O, no
// internal sleeping, no goroutines.
package engine

import (
	"fmt"
	"io"

	"github.com/matchcore/engine/ingress"
	"github.com/matchcore/engine/orderbook"
	"github.com/matchcore/engine/wire"
)

// MaxReassembly bounds the reassembly buffer. Exceeding it clears the
// buffer and counts a buffer_overflow rather than growing unbounded.
const MaxReassembly = 512

// EventKind names the four wire-dispatch events an observer may see.
type EventKind byte

const (
	EventAdd     EventKind = EventKind(wire.Add)
	EventCancel  EventKind = EventKind(wire.Cancel)
	EventExecute EventKind = EventKind(wire.Execute)
	EventReplace EventKind = EventKind(wire.Replace)
)

// Observer is invoked once per successfully dispatched message, after the
// mutation has taken effect, with the order's post-mutation snapshot. It
// must not call any mutating Engine method.
type Observer func(kind EventKind, order orderbook.Order)

// ErrorCounters are the four monotone counters spec'd for dispatch and
// framing failures. They are query-only; nothing resets them at runtime.
type ErrorCounters struct {
	UnknownMessageTypes uint64
	BufferOverflows     uint64
	IncompleteMessages  uint64
	InvalidOperations   uint64
}

// Engine is the ingest and matching core: Fifo -> reassembly -> parse ->
// dispatch -> Book+OrderIndex -> Observer.
type Engine struct {
	fifo   *ingress.Fifo
	book   *orderbook.Book
	buffer []byte
	errs   ErrorCounters
	notify Observer
}

// New returns an Engine with a Fifo of the given byte capacity and an
// empty book.
func New(fifoCapacity uint64) *Engine {
	return &Engine{
		fifo: ingress.New(fifoCapacity),
		book: orderbook.New(),
	}
}

// SetObserver installs the event callback. Passing nil disables
// notification.
func (e *Engine) SetObserver(obs Observer) { e.notify = obs }

// WriteChunk offers a raw byte chunk to the ingress Fifo. True means
// accepted; false means the producer must retry after Process drains.
func (e *Engine) WriteChunk(chunk []byte) bool {
	return e.fifo.Write(chunk)
}

// Process drains the Fifo into the reassembly buffer, guards against
// overflow, then repeatedly parses and dispatches complete messages until
// the buffer is empty or holds only a partial message. An unrecognized type
// byte is discarded and parsing continues. With no new bytes since the last
// call it leaves the book unchanged, though a pending partial message is
// counted again in IncompleteMessages.
func (e *Engine) Process() {
	for {
		chunk, ok := e.fifo.Read()
		if !ok {
			break
		}
		e.buffer = append(e.buffer, chunk...)
	}

	if len(e.buffer) > MaxReassembly {
		e.buffer = e.buffer[:0]
		e.errs.BufferOverflows++
		return
	}

	for {
		result := wire.Parse(e.buffer)
		switch result.Status {
		case wire.StatusComplete:
			e.dispatch(result)
			e.buffer = e.buffer[result.BytesConsumed:]
		case wire.StatusUnknownType:
			e.errs.UnknownMessageTypes++
			e.buffer = e.buffer[1:]
		case wire.StatusNeedMore:
			e.errs.IncompleteMessages++
			return
		case wire.StatusEmpty:
			return
		}
	}
}

func (e *Engine) dispatch(r wire.Result) {
	switch r.Kind {
	case wire.Add:
		e.dispatchAdd(r.Add)
	case wire.Cancel:
		e.dispatchCancel(r.Cancel)
	case wire.Execute:
		e.dispatchExecute(r.Execute)
	case wire.Replace:
		e.dispatchReplace(r.Replace)
	}
}

func (e *Engine) dispatchAdd(f wire.AddFields) {
	side := orderbook.Ask
	if f.Side == 'B' {
		side = orderbook.Bid
	}
	order, ok := e.book.Add(f.OrderID, side, f.Price, f.Quantity, f.Timestamp)
	if !ok {
		e.errs.InvalidOperations++
		return
	}
	e.emit(EventAdd, order)
}

func (e *Engine) dispatchCancel(f wire.CancelFields) {
	order, ok := e.book.Cancel(f.OrderID)
	if !ok {
		e.errs.InvalidOperations++
		return
	}
	e.emit(EventCancel, order)
}

func (e *Engine) dispatchExecute(f wire.ExecuteFields) {
	order, ok := e.book.Execute(f.OrderID, f.Quantity)
	if !ok {
		e.errs.InvalidOperations++
		return
	}
	e.emit(EventExecute, order)
}

func (e *Engine) dispatchReplace(f wire.ReplaceFields) {
	order, ok := e.book.Replace(f.OriginalOrderID, f.NewOrderID, f.Price, f.Quantity)
	if !ok {
		e.errs.InvalidOperations++
		return
	}
	e.emit(EventReplace, order)
}

func (e *Engine) emit(kind EventKind, order orderbook.Order) {
	if e.notify != nil {
		e.notify(kind, order)
	}
}

// AggressiveMatch walks the opposite side of takingSide from best price
// outward, FIFO within each level, up to quantity. It is a host-invoked
// API, never driven by wire dispatch, and emits no observer event.
func (e *Engine) AggressiveMatch(takingSide orderbook.Side, quantity uint64) ([]orderbook.Trade, uint64) {
	return e.book.AggressiveMatch(takingSide, quantity)
}

// BestBid returns the book's best bid price and aggregate quantity.
func (e *Engine) BestBid() (price, qty uint64, ok bool) { return e.book.BestBid() }

// BestAsk returns the book's best ask price and aggregate quantity.
func (e *Engine) BestAsk() (price, qty uint64, ok bool) { return e.book.BestAsk() }

// Spread returns best_ask - best_bid, or false if undefined.
func (e *Engine) Spread() (spread uint64, ok bool) { return e.book.Spread() }

// Depth returns the top-k levels on each side.
func (e *Engine) Depth(k int) (bids, asks []orderbook.LevelSnapshot) { return e.book.Depth(k) }

// FindOrder returns a live order's snapshot.
func (e *Engine) FindOrder(orderID uint64) (orderbook.Order, bool) { return e.book.FindOrder(orderID) }

// OrderCount returns the number of order records currently tracked.
func (e *Engine) OrderCount() int { return e.book.OrderCount() }

// ActiveOrderCount returns the number of currently-active orders.
func (e *Engine) ActiveOrderCount() int { return e.book.ActiveOrderCount() }

// ErrorStats returns a snapshot of the four monotone error counters.
func (e *Engine) ErrorStats() ErrorCounters { return e.errs }

// FifoStats exposes the underlying Fifo for flow-control queries.
func (e *Engine) FifoStats() *ingress.Fifo { return e.fifo }

// DumpOrders writes a line per tracked order, grounded on
// original_source's OrderBook::print_orders debug dump. Read-only,
// diagnostic only; has no bearing on any invariant.
func (e *Engine) DumpOrders(w io.Writer) error {
	for _, o := range e.book.Orders() {
		if _, err := fmt.Fprintf(w, "order_id=%d side=%s price=%d remaining=%d active=%t ts=%d\n",
			o.OrderID, o.Side, o.Price, o.Remaining, o.Active, o.Timestamp); err != nil {
			return err
		}
	}
	return nil
}
