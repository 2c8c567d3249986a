package model

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := OrderEvent{
		Kind:      'A',
		OrderID:   12345,
		Sequence:  7,
		Side:      0,
		Price:     10000,
		Quantity:  50,
		Active:    true,
		Timestamp: 1_000_000,
	}

	buf := EncodeEvent(e)
	got, err := DecodeEvent(buf)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if got != e {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, e)
	}
}

func TestDecodeInactiveCancelEvent(t *testing.T) {
	e := OrderEvent{Kind: 'X', OrderID: 1, Sequence: 1, Active: false}
	buf := EncodeEvent(e)
	got, err := DecodeEvent(buf)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if got.Active {
		t.Fatal("expected decoded Active=false")
	}
}

func TestDecodeMalformedBufferErrors(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xFF}); err == nil {
		t.Fatal("expected error decoding malformed buffer")
	}
}
