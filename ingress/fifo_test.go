package ingress

import "testing"

func TestFifoAcceptsWithinCapacity(t *testing.T) {
	f := New(10)
	if !f.Write([]byte("hello")) {
		t.Fatal("expected write to be accepted")
	}
	if f.DepthBytes() != 5 {
		t.Fatalf("expected depth_bytes=5, got %d", f.DepthBytes())
	}
	if f.BytesWritten() != 5 {
		t.Fatalf("expected bytes_written=5, got %d", f.BytesWritten())
	}
}

func TestFifoRejectsOverCapacity(t *testing.T) {
	f := New(4)
	if f.Write([]byte("hello")) {
		t.Fatal("expected write to be rejected")
	}
	if f.DepthBytes() != 0 {
		t.Fatalf("expected depth_bytes=0 after rejection, got %d", f.DepthBytes())
	}
	if f.BackpressureEvents() != 1 || f.BytesDropped() != 5 {
		t.Fatalf("expected 1 backpressure event and 5 bytes dropped, got %d/%d",
			f.BackpressureEvents(), f.BytesDropped())
	}
}

func TestFifoOrderingIsFIFO(t *testing.T) {
	f := New(100)
	f.Write([]byte("first"))
	f.Write([]byte("second"))

	chunk, ok := f.Read()
	if !ok || string(chunk) != "first" {
		t.Fatalf("expected 'first', got %q ok=%v", chunk, ok)
	}
	chunk, ok = f.Read()
	if !ok || string(chunk) != "second" {
		t.Fatalf("expected 'second', got %q ok=%v", chunk, ok)
	}
	if _, ok := f.Read(); ok {
		t.Fatal("expected empty read to return false")
	}
}

func TestFifoHighWaterMark(t *testing.T) {
	f := New(100)
	f.Write([]byte("0123456789")) // depth 10
	f.Read()                      // depth 0
	f.Write([]byte("01234"))      // depth 5
	if f.HighWaterMark() != 10 {
		t.Fatalf("expected high_water_mark=10, got %d", f.HighWaterMark())
	}
}

func TestFifoUtilization(t *testing.T) {
	f := New(200)
	f.Write(make([]byte, 50))
	if got := f.Utilization(); got != 0.25 {
		t.Fatalf("expected utilization=0.25, got %v", got)
	}
}
