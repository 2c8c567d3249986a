// Package wire implements the stateless per-message decoder over the ITCH
// 5.0 subset this engine accepts: Add ('A'), Cancel ('X'), Execute ('E'),
// and Replace ('U'). It never buffers or blocks — framing and reassembly
// are the engine's concern (see engine.Engine.Process).
package wire

import "encoding/binary"

// Kind identifies a decoded message's wire type.
type Kind byte

const (
	Add     Kind = 'A'
	Cancel  Kind = 'X'
	Execute Kind = 'E'
	Replace Kind = 'U'
)

// Fixed on-wire lengths for each recognized kind, including the leading
// type byte.
const (
	addLen     = 36
	cancelLen  = 23
	executeLen = 31
	replaceLen = 35
)

// AddFields holds the decoded payload of an 'A' message. Stock-locate,
// tracking-number, and the stock symbol itself are skipped on the wire;
// this engine is single-instrument and never consults them.
type AddFields struct {
	Timestamp uint64 // 48-bit, stored widened
	OrderID   uint64
	Side      byte // 'B' or 'S' on the wire; engine.go maps to orderbook.Side
	Quantity  uint32
	Price     uint32
}

// CancelFields holds the decoded payload of an 'X' message. CancelledQty is
// decoded but, per original_source, never consulted — a Cancel is always a
// full cancel (SPEC_FULL.md §C).
type CancelFields struct {
	OrderID      uint64
	CancelledQty uint32
}

// ExecuteFields holds the decoded payload of an 'E' message. MatchNumber is
// skipped — this engine assigns no meaning to it.
type ExecuteFields struct {
	OrderID  uint64
	Quantity uint32
}

// ReplaceFields holds the decoded payload of a 'U' message.
type ReplaceFields struct {
	Timestamp         uint64
	OriginalOrderID   uint64
	NewOrderID        uint64
	Quantity          uint32
	Price             uint32
}

// Result is the outcome of one Parse call. Exactly one of the four result
// kinds applies; callers should switch on Status, and on StatusComplete,
// on Kind.
type Result struct {
	Status        Status
	Kind          Kind
	BytesConsumed int
	UnknownByte   byte

	Add     AddFields
	Cancel  CancelFields
	Execute ExecuteFields
	Replace ReplaceFields
}

// Status discriminates which branch of Result is populated.
type Status int

const (
	StatusEmpty Status = iota
	StatusComplete
	StatusNeedMore
	StatusUnknownType
)

// Parse inspects buf and returns one of: a fully decoded message
// (StatusComplete, with BytesConsumed set to its exact wire length),
// StatusNeedMore (the type byte is recognized but buf is shorter than its
// fixed length), StatusUnknownType (the leading byte isn't a recognized
// type), or StatusEmpty (buf has zero length). Parse never mutates buf and
// never consumes more than one message.
func Parse(buf []byte) Result {
	if len(buf) == 0 {
		return Result{Status: StatusEmpty}
	}

	switch Kind(buf[0]) {
	case Add:
		if len(buf) < addLen {
			return Result{Status: StatusNeedMore}
		}
		return Result{
			Status:        StatusComplete,
			Kind:          Add,
			BytesConsumed: addLen,
			Add: AddFields{
				Timestamp: readUint48(buf[5:11]),
				OrderID:   binary.LittleEndian.Uint64(buf[11:19]),
				Side:      buf[19],
				Quantity:  binary.LittleEndian.Uint32(buf[20:24]),
				Price:     binary.LittleEndian.Uint32(buf[32:36]),
			},
		}

	case Cancel:
		if len(buf) < cancelLen {
			return Result{Status: StatusNeedMore}
		}
		return Result{
			Status:        StatusComplete,
			Kind:          Cancel,
			BytesConsumed: cancelLen,
			Cancel: CancelFields{
				OrderID:      binary.LittleEndian.Uint64(buf[11:19]),
				CancelledQty: binary.LittleEndian.Uint32(buf[19:23]),
			},
		}

	case Execute:
		if len(buf) < executeLen {
			return Result{Status: StatusNeedMore}
		}
		return Result{
			Status:        StatusComplete,
			Kind:          Execute,
			BytesConsumed: executeLen,
			Execute: ExecuteFields{
				OrderID:  binary.LittleEndian.Uint64(buf[11:19]),
				Quantity: binary.LittleEndian.Uint32(buf[19:23]),
			},
		}

	case Replace:
		if len(buf) < replaceLen {
			return Result{Status: StatusNeedMore}
		}
		return Result{
			Status:        StatusComplete,
			Kind:          Replace,
			BytesConsumed: replaceLen,
			Replace: ReplaceFields{
				Timestamp:       readUint48(buf[5:11]),
				OriginalOrderID: binary.LittleEndian.Uint64(buf[11:19]),
				NewOrderID:      binary.LittleEndian.Uint64(buf[19:27]),
				Quantity:        binary.LittleEndian.Uint32(buf[27:31]),
				Price:           binary.LittleEndian.Uint32(buf[31:35]),
			},
		}

	default:
		return Result{Status: StatusUnknownType, UnknownByte: buf[0]}
	}
}

// readUint48 widens a 6-byte little-endian field into a uint64.
func readUint48(b []byte) uint64 {
	var buf8 [8]byte
	copy(buf8[:6], b)
	return binary.LittleEndian.Uint64(buf8[:])
}
