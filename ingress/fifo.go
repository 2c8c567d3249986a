// Package ingress implements the bounded byte-chunk queue sitting between
// an untrusted producer and the engine's framing parser. It is a pure,
// synchronous, allocation-only data structure: no goroutines, no channels,
// no blocking — concurrency safety, if any is needed, is the host's
// concern, matching the single-writer discipline the engine requires.
package ingress

import "container/list"

// Fifo is a FIFO queue of byte chunks bounded by total byte size rather
// than chunk count. Grounded on original_source/'s DataFabric: a fixed
// byte-capacity chunk queue ahead of the engine's reassembly buffer, with explicit
// accept/reject flow control instead of unbounded growth.
type Fifo struct {
	chunks           *list.List
	depthBytes       uint64
	capacityBytes    uint64
	bytesWritten     uint64
	bytesRead        uint64
	bytesDropped     uint64
	backpressureEvts uint64
	highWaterMark    uint64
}

// New returns an empty Fifo with the given byte capacity.
func New(capacityBytes uint64) *Fifo {
	return &Fifo{
		chunks:        list.New(),
		capacityBytes: capacityBytes,
	}
}

// Write enqueues chunk if depth_bytes+len(chunk) would not exceed
// capacity_bytes, returning true on acceptance. On rejection, chunk is not
// enqueued, and backpressure_events/bytes_dropped are each incremented.
func (f *Fifo) Write(chunk []byte) bool {
	size := uint64(len(chunk))
	if f.depthBytes+size > f.capacityBytes {
		f.backpressureEvts++
		f.bytesDropped += size
		return false
	}

	buf := make([]byte, size)
	copy(buf, chunk)
	f.chunks.PushBack(buf)

	f.depthBytes += size
	f.bytesWritten += size
	if f.depthBytes > f.highWaterMark {
		f.highWaterMark = f.depthBytes
	}
	return true
}

// Read dequeues and returns the oldest chunk, or (nil, false) if empty.
func (f *Fifo) Read() ([]byte, bool) {
	front := f.chunks.Front()
	if front == nil {
		return nil, false
	}
	f.chunks.Remove(front)
	chunk := front.Value.([]byte)
	f.depthBytes -= uint64(len(chunk))
	f.bytesRead += uint64(len(chunk))
	return chunk, true
}

// DepthBytes returns the current total enqueued byte count.
func (f *Fifo) DepthBytes() uint64 { return f.depthBytes }

// CapacityBytes returns the configured byte capacity.
func (f *Fifo) CapacityBytes() uint64 { return f.capacityBytes }

// Utilization returns depth_bytes/capacity_bytes in [0,1], or 0 if capacity
// is 0.
func (f *Fifo) Utilization() float64 {
	if f.capacityBytes == 0 {
		return 0
	}
	return float64(f.depthBytes) / float64(f.capacityBytes)
}

// BytesWritten returns the cumulative count of bytes successfully written.
func (f *Fifo) BytesWritten() uint64 { return f.bytesWritten }

// BytesRead returns the cumulative count of bytes returned by Read.
func (f *Fifo) BytesRead() uint64 { return f.bytesRead }

// BytesDropped returns the cumulative count of bytes rejected by Write.
func (f *Fifo) BytesDropped() uint64 { return f.bytesDropped }

// BackpressureEvents returns the cumulative count of rejected writes.
func (f *Fifo) BackpressureEvents() uint64 { return f.backpressureEvts }

// HighWaterMark returns the maximum depth_bytes ever observed.
func (f *Fifo) HighWaterMark() uint64 { return f.highWaterMark }
