/*
DESCRIPTION
  writer.go provides a bit writer implementation that accumulates bits
  MSB-first into a growing byte buffer.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package bits

// Writer is an append-only, bit-granular output buffer. Bits are written
// MSB-first into the byte stream; the output grows by doubling as needed.
type Writer struct {
	buf  []byte
	cur  byte
	nbit int // number of bits already placed in cur, 0-7
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBits appends the low n bits of v, 1 <= n <= 32, most-significant
// bit first.
func (w *Writer) WriteBits(v uint32, n int) {
	if n < 1 || n > 32 {
		panic("bits: WriteBits: n out of range [1,32]")
	}

	for i := n - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		w.cur = w.cur<<1 | bit
		w.nbit++
		if w.nbit == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.nbit = 0
		}
	}
}

// Flush pads any partial final byte with 1-bits (the JPEG convention, which
// avoids an accidental 0x00 stuffing byte or marker appearing in the pad)
// and returns the accumulated unstuffed payload. Flush may be called more
// than once; subsequent calls return the same buffer unchanged.
func (w *Writer) Flush() []byte {
	if w.nbit > 0 {
		pad := byte(1<<uint(8-w.nbit)) - 1
		w.cur = w.cur<<uint(8-w.nbit) | pad
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbit = 0
	}
	return w.buf
}
