package wire

import (
	"encoding/binary"
	"testing"
)

func buildAdd(orderID uint64, side byte, qty, price uint32) []byte {
	buf := make([]byte, addLen)
	buf[0] = byte(Add)
	// bytes 1-4: stock-locate/tracking-number, left zero, never consulted.
	binary.LittleEndian.PutUint32(buf[5:9], 0) // lower 32 bits of the 48-bit timestamp
	buf[9], buf[10] = 0, 0
	binary.LittleEndian.PutUint64(buf[11:19], orderID)
	buf[19] = side
	binary.LittleEndian.PutUint32(buf[20:24], qty)
	// bytes 24-31: stock symbol, skipped.
	binary.LittleEndian.PutUint32(buf[32:36], price)
	return buf
}

func TestParseEmpty(t *testing.T) {
	r := Parse(nil)
	if r.Status != StatusEmpty {
		t.Fatalf("expected StatusEmpty, got %v", r.Status)
	}
}

func TestParseUnknownType(t *testing.T) {
	r := Parse([]byte{0xFF, 1, 2, 3})
	if r.Status != StatusUnknownType || r.UnknownByte != 0xFF {
		t.Fatalf("expected StatusUnknownType{0xFF}, got %+v", r)
	}
}

func TestParseAddNeedMore(t *testing.T) {
	full := buildAdd(42, 'B', 100, 5000)
	r := Parse(full[:addLen-1])
	if r.Status != StatusNeedMore {
		t.Fatalf("expected StatusNeedMore, got %v", r.Status)
	}
}

func TestParseAddComplete(t *testing.T) {
	full := buildAdd(42, 'B', 100, 5000)
	r := Parse(full)
	if r.Status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %v", r.Status)
	}
	if r.BytesConsumed != addLen {
		t.Fatalf("expected BytesConsumed=%d, got %d", addLen, r.BytesConsumed)
	}
	if r.Add.OrderID != 42 || r.Add.Side != 'B' || r.Add.Quantity != 100 || r.Add.Price != 5000 {
		t.Fatalf("unexpected decoded fields: %+v", r.Add)
	}
}

func TestParseOnlyConsumesOneMessage(t *testing.T) {
	first := buildAdd(1, 'B', 10, 100)
	second := buildAdd(2, 'S', 20, 200)
	buf := append(first, second...)

	r := Parse(buf)
	if r.Status != StatusComplete || r.BytesConsumed != addLen {
		t.Fatalf("expected single Add consumed, got %+v", r)
	}
	if r.Add.OrderID != 1 {
		t.Fatalf("expected first message decoded, got order_id=%d", r.Add.OrderID)
	}
}

func TestParseCancel(t *testing.T) {
	buf := make([]byte, cancelLen)
	buf[0] = byte(Cancel)
	binary.LittleEndian.PutUint64(buf[11:19], 99)
	binary.LittleEndian.PutUint32(buf[19:23], 7)

	r := Parse(buf)
	if r.Status != StatusComplete || r.BytesConsumed != cancelLen {
		t.Fatalf("expected complete Cancel, got %+v", r)
	}
	if r.Cancel.OrderID != 99 || r.Cancel.CancelledQty != 7 {
		t.Fatalf("unexpected decoded fields: %+v", r.Cancel)
	}
}

func TestParseExecute(t *testing.T) {
	buf := make([]byte, executeLen)
	buf[0] = byte(Execute)
	binary.LittleEndian.PutUint64(buf[11:19], 7)
	binary.LittleEndian.PutUint32(buf[19:23], 30)

	r := Parse(buf)
	if r.Status != StatusComplete || r.BytesConsumed != executeLen {
		t.Fatalf("expected complete Execute, got %+v", r)
	}
	if r.Execute.OrderID != 7 || r.Execute.Quantity != 30 {
		t.Fatalf("unexpected decoded fields: %+v", r.Execute)
	}
}

func TestParseReplace(t *testing.T) {
	buf := make([]byte, replaceLen)
	buf[0] = byte(Replace)
	binary.LittleEndian.PutUint64(buf[11:19], 5)
	binary.LittleEndian.PutUint64(buf[19:27], 6)
	binary.LittleEndian.PutUint32(buf[27:31], 15)
	binary.LittleEndian.PutUint32(buf[31:35], 250)

	r := Parse(buf)
	if r.Status != StatusComplete || r.BytesConsumed != replaceLen {
		t.Fatalf("expected complete Replace, got %+v", r)
	}
	if r.Replace.OriginalOrderID != 5 || r.Replace.NewOrderID != 6 ||
		r.Replace.Quantity != 15 || r.Replace.Price != 250 {
		t.Fatalf("unexpected decoded fields: %+v", r.Replace)
	}
}
