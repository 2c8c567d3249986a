package orderbook

import "testing"

func TestAddRejectsDuplicateID(t *testing.T) {
	b := New()
	if _, ok := b.Add(1, Bid, 100, 10, 0); !ok {
		t.Fatal("expected first add to succeed")
	}
	if _, ok := b.Add(1, Bid, 200, 20, 0); ok {
		t.Fatal("expected duplicate order_id add to fail")
	}
	if b.OrderCount() != 1 {
		t.Fatalf("expected order_count=1 after rejected duplicate, got %d", b.OrderCount())
	}
}

func TestRoundTripAddCancel(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 10, 0)
	snapshot, ok := b.Cancel(1)
	if !ok {
		t.Fatal("expected cancel to succeed")
	}
	if snapshot.Active {
		t.Fatal("expected cancel snapshot to have Active=false")
	}
	if _, ok := b.FindOrder(1); ok {
		t.Fatal("expected order to be gone after cancel")
	}
	if _, _, ok := b.BestBid(); ok {
		t.Fatal("expected empty book after round-trip add/cancel")
	}
}

func TestCancelMissingOrder(t *testing.T) {
	b := New()
	if _, ok := b.Cancel(999); ok {
		t.Fatal("expected cancel of missing order to fail")
	}
}

func TestExecutePartialThenFull(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 50, 0)

	snap, ok := b.Execute(1, 20)
	if !ok || snap.Remaining != 30 || !snap.Active {
		t.Fatalf("unexpected partial execute result: %+v ok=%v", snap, ok)
	}
	price, qty, _ := b.BestBid()
	if price != 100 || qty != 30 {
		t.Fatalf("expected best_bid=(100,30), got (%d,%d)", price, qty)
	}

	snap, ok = b.Execute(1, 30)
	if !ok || snap.Remaining != 0 || snap.Active {
		t.Fatalf("unexpected full execute result: %+v ok=%v", snap, ok)
	}
	if _, ok := b.FindOrder(1); ok {
		t.Fatal("expected order to be erased after full execute")
	}
	if _, _, ok := b.BestBid(); ok {
		t.Fatal("expected empty level after full execute")
	}
}

func TestExecuteOverRemainingIsRejected(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 10, 0)
	if _, ok := b.Execute(1, 11); ok {
		t.Fatal("expected execute exceeding remaining quantity to fail")
	}
	order, _ := b.FindOrder(1)
	if order.Remaining != 10 {
		t.Fatalf("expected state untouched, remaining=%d", order.Remaining)
	}
}

func TestReplacePreservesSideAndTimestamp(t *testing.T) {
	b := New()
	b.Add(1, Ask, 100, 10, 777)

	snap, ok := b.Replace(1, 2, 110, 25)
	if !ok {
		t.Fatal("expected replace to succeed")
	}
	if snap.Side != Ask || snap.Timestamp != 777 || snap.Price != 110 || snap.Remaining != 25 {
		t.Fatalf("unexpected replaced order: %+v", snap)
	}
	if _, ok := b.FindOrder(1); ok {
		t.Fatal("expected original order gone after replace")
	}
}

func TestReplaceMissingOriginalIsRejected(t *testing.T) {
	b := New()
	if _, ok := b.Replace(1, 2, 100, 10); ok {
		t.Fatal("expected replace of missing original to fail")
	}
}

func TestReplaceCollisionLeavesColliderUntouched(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 10, 0)
	b.Add(2, Bid, 200, 20, 0)

	if _, ok := b.Replace(1, 2, 150, 15); ok {
		t.Fatal("expected replace to fail when new_order_id collides with a live order")
	}
	if _, ok := b.FindOrder(1); ok {
		t.Fatal("expected original order to already be cancelled despite the failed replace")
	}
	collider, ok := b.FindOrder(2)
	if !ok || collider.Price != 200 || collider.Remaining != 20 {
		t.Fatalf("expected collider untouched, got %+v ok=%v", collider, ok)
	}
}

func TestSpreadUndefinedWhenCrossedOrOneSided(t *testing.T) {
	b := New()
	if _, ok := b.Spread(); ok {
		t.Fatal("expected no spread on empty book")
	}
	b.Add(1, Bid, 100, 10, 0)
	if _, ok := b.Spread(); ok {
		t.Fatal("expected no spread with only one side populated")
	}
	b.Add(2, Ask, 90, 10, 0) // crossed: ask <= bid
	if _, ok := b.Spread(); ok {
		t.Fatal("expected no spread on a crossed book")
	}
}

func TestSpreadNormalBook(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 10, 0)
	b.Add(2, Ask, 110, 10, 0)
	spread, ok := b.Spread()
	if !ok || spread != 10 {
		t.Fatalf("expected spread=10, got %d ok=%v", spread, ok)
	}
}

func TestDepthOrdering(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 5, 0)
	b.Add(2, Bid, 105, 5, 0)
	b.Add(3, Bid, 95, 5, 0)

	bids, _ := b.Depth(10)
	if len(bids) != 3 || bids[0].Price != 105 || bids[1].Price != 100 || bids[2].Price != 95 {
		t.Fatalf("expected descending bid depth, got %+v", bids)
	}
}

func TestAggressiveMatchWalksFIFOAtBestPrice(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 10, 0)
	b.Add(2, Bid, 100, 10, 1) // same price, arrives after order 1
	b.Add(3, Bid, 99, 10, 2)

	trades, filled := b.AggressiveMatch(Ask, 15)
	if filled != 15 {
		t.Fatalf("expected filled=15, got %d", filled)
	}
	if len(trades) != 2 || trades[0].MakerOrderID != 1 || trades[0].Quantity != 10 ||
		trades[1].MakerOrderID != 2 || trades[1].Quantity != 5 {
		t.Fatalf("expected FIFO-first fill at best price, got %+v", trades)
	}

	order2, ok := b.FindOrder(2)
	if !ok || order2.Remaining != 5 {
		t.Fatalf("expected order 2 partially filled to remaining=5, got %+v ok=%v", order2, ok)
	}
	if _, ok := b.FindOrder(1); ok {
		t.Fatal("expected order 1 to be fully drained and erased")
	}
}

func TestAggressiveMatchStopsWhenBookExhausted(t *testing.T) {
	b := New()
	b.Add(1, Bid, 100, 10, 0)

	trades, filled := b.AggressiveMatch(Ask, 100)
	if filled != 10 {
		t.Fatalf("expected filled=10 (book exhausted), got %d", filled)
	}
	if len(trades) != 1 {
		t.Fatalf("expected exactly 1 trade, got %d", len(trades))
	}
	if _, _, ok := b.BestBid(); ok {
		t.Fatal("expected book to be empty after full drain")
	}
}
