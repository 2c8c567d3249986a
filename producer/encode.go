package main

import "encoding/binary"

// encodeAdd builds a 36-byte 'A' message per the offset table resolved in
// SPEC_FULL.md §C. Stock-locate, tracking-number, and the stock symbol are
// left zero — this engine never consults them.
func encodeAdd(timestamp, orderID uint64, side byte, quantity, price uint32) []byte {
	buf := make([]byte, 36)
	buf[0] = 'A'
	putUint48(buf[5:11], timestamp)
	binary.LittleEndian.PutUint64(buf[11:19], orderID)
	buf[19] = side
	binary.LittleEndian.PutUint32(buf[20:24], quantity)
	binary.LittleEndian.PutUint32(buf[32:36], price)
	return buf
}

// encodeCancel builds a 23-byte 'X' message.
func encodeCancel(orderID uint64, cancelledQty uint32) []byte {
	buf := make([]byte, 23)
	buf[0] = 'X'
	binary.LittleEndian.PutUint64(buf[11:19], orderID)
	binary.LittleEndian.PutUint32(buf[19:23], cancelledQty)
	return buf
}

// encodeExecute builds a 31-byte 'E' message.
func encodeExecute(orderID uint64, quantity uint32) []byte {
	buf := make([]byte, 31)
	buf[0] = 'E'
	binary.LittleEndian.PutUint64(buf[11:19], orderID)
	binary.LittleEndian.PutUint32(buf[19:23], quantity)
	return buf
}

// encodeReplace builds a 35-byte 'U' message.
func encodeReplace(timestamp, originalOrderID, newOrderID uint64, quantity, price uint32) []byte {
	buf := make([]byte, 35)
	buf[0] = 'U'
	putUint48(buf[5:11], timestamp)
	binary.LittleEndian.PutUint64(buf[11:19], originalOrderID)
	binary.LittleEndian.PutUint64(buf[19:27], newOrderID)
	binary.LittleEndian.PutUint32(buf[27:31], quantity)
	binary.LittleEndian.PutUint32(buf[31:35], price)
	return buf
}

func putUint48(b []byte, v uint64) {
	var buf8 [8]byte
	binary.LittleEndian.PutUint64(buf8[:], v)
	copy(b, buf8[:6])
}
