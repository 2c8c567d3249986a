// Package model defines the observer-event wire envelope published
// downstream of the engine, and its protobuf-wire-format codec. There is no
// .proto/protoc toolchain in this repo (see DESIGN.md), so OrderEvent is
// hand-encoded with google.golang.org/protobuf/encoding/protowire's
// tag/varint/length-delimited primitives directly, rather than through
// generated message types.
package model

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers for the OrderEvent wire envelope. Stable once published;
// never renumber a field already in use downstream.
const (
	fieldKind      = 1
	fieldOrderID   = 2
	fieldSequence  = 3
	fieldSide      = 4
	fieldPrice     = 5
	fieldQuantity  = 6
	fieldActive    = 7
	fieldTimestamp = 8
)

// OrderEvent is the envelope published to the engine-events Kafka topic for
// every dispatched Add/Cancel/Execute/Replace. Kind carries the wire
// message kind byte ('A', 'X', 'E', 'U'); Sequence is a per-partition
// monotonic counter assigned by feedgw when it publishes the event, used by
// the auditor as part of the natural key for idempotent persistence.
type OrderEvent struct {
	Kind      byte
	OrderID   uint64
	Sequence  uint64
	Side      uint32 // 0 = Bid, 1 = Ask
	Price     uint64
	Quantity  uint64
	Active    bool
	Timestamp uint64
}

// EncodeEvent serializes e using the protobuf wire format: each field as a
// tag followed by a varint, or zigzag-free varint for unsigned values.
func EncodeEvent(e OrderEvent) []byte {
	var buf []byte
	buf = protowire.AppendTag(buf, fieldKind, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(e.Kind))

	buf = protowire.AppendTag(buf, fieldOrderID, protowire.VarintType)
	buf = protowire.AppendVarint(buf, e.OrderID)

	buf = protowire.AppendTag(buf, fieldSequence, protowire.VarintType)
	buf = protowire.AppendVarint(buf, e.Sequence)

	buf = protowire.AppendTag(buf, fieldSide, protowire.VarintType)
	buf = protowire.AppendVarint(buf, uint64(e.Side))

	buf = protowire.AppendTag(buf, fieldPrice, protowire.VarintType)
	buf = protowire.AppendVarint(buf, e.Price)

	buf = protowire.AppendTag(buf, fieldQuantity, protowire.VarintType)
	buf = protowire.AppendVarint(buf, e.Quantity)

	buf = protowire.AppendTag(buf, fieldActive, protowire.VarintType)
	buf = protowire.AppendVarint(buf, boolToVarint(e.Active))

	buf = protowire.AppendTag(buf, fieldTimestamp, protowire.VarintType)
	buf = protowire.AppendVarint(buf, e.Timestamp)

	return buf
}

// DecodeEvent parses a buffer produced by EncodeEvent. Unknown fields are
// skipped, matching protobuf's forward-compatibility rule — a future field
// added to the envelope never breaks an older auditor build.
func DecodeEvent(buf []byte) (OrderEvent, error) {
	var e OrderEvent

	for len(buf) > 0 {
		num, typ, n := protowire.ConsumeTag(buf)
		if n < 0 {
			return OrderEvent{}, fmt.Errorf("model: malformed tag: %w", protowire.ParseError(n))
		}
		buf = buf[n:]

		if typ != protowire.VarintType {
			m := protowire.ConsumeFieldValue(num, typ, buf)
			if m < 0 {
				return OrderEvent{}, fmt.Errorf("model: malformed field %d: %w", num, protowire.ParseError(m))
			}
			buf = buf[m:]
			continue
		}

		v, n := protowire.ConsumeVarint(buf)
		if n < 0 {
			return OrderEvent{}, fmt.Errorf("model: malformed varint for field %d: %w", num, protowire.ParseError(n))
		}
		buf = buf[n:]

		switch num {
		case fieldKind:
			e.Kind = byte(v)
		case fieldOrderID:
			e.OrderID = v
		case fieldSequence:
			e.Sequence = v
		case fieldSide:
			e.Side = uint32(v)
		case fieldPrice:
			e.Price = v
		case fieldQuantity:
			e.Quantity = v
		case fieldActive:
			e.Active = v != 0
		case fieldTimestamp:
			e.Timestamp = v
		}
	}

	return e, nil
}

func boolToVarint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
