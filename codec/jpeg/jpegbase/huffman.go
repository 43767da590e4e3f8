/*
DESCRIPTION
  huffman.go provides canonical Huffman table construction from the
  standard 16-length-count form, streaming symbol decode, and reverse-
  lookup symbol encode.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package jpegbase

import (
	"fmt"

	"github.com/ausocean/jpegroi/codec/jpeg/jpegbase/bits"
)

const (
	classDC = 0
	classAC = 1

	maxCodeLength  = 16
	maxTableValues = 256
)

// HuffmanTable is a canonical Huffman code table built from a DHT segment's
// per-length counts and value list, as defined in ITU-T T.81 Annex C.
type HuffmanTable struct {
	Class       byte // classDC or classAC
	Destination byte // 0-3
	Counts      [maxCodeLength]byte
	Values      []byte

	// decode support, indexed by code length 1-16 (index 0 unused).
	minCode [maxCodeLength + 1]int
	maxCode [maxCodeLength + 1]int // -1 means no codes of this length
	valPtr  [maxCodeLength + 1]int

	// encode support, indexed by symbol value.
	encCode [maxTableValues]uint16
	encLen  [maxTableValues]byte
}

// NewHuffmanTable builds the canonical code assignment for a table with the
// given per-length counts and concatenated value list, following the
// construction in spec: start with code=0, and for each length 1..16
// (after left-shifting code by one, except before the first symbol) assign
// the next counts[length] values in order the successive codes
// code, code+1, ..., incrementing code each time, then left-shift code by
// one before moving to the next length.
func NewHuffmanTable(class, destination byte, counts [maxCodeLength]byte, values []byte) (*HuffmanTable, error) {
	var total int
	for _, c := range counts {
		total += int(c)
	}
	if total > maxTableValues {
		return nil, fmt.Errorf("huffman table: sum of counts %d exceeds %d", total, maxTableValues)
	}
	if total != len(values) {
		return nil, fmt.Errorf("huffman table: sum of counts %d does not match %d values", total, len(values))
	}

	t := &HuffmanTable{Class: class, Destination: destination, Counts: counts, Values: values}
	for l := 1; l <= maxCodeLength; l++ {
		t.maxCode[l] = -1
	}

	var code, k int
	for length := 1; length <= maxCodeLength; length++ {
		n := int(counts[length-1])
		if n > 0 {
			t.valPtr[length] = k
			t.minCode[length] = code
			for i := 0; i < n; i++ {
				v := values[k]
				t.encCode[v] = uint16(code)
				t.encLen[v] = byte(length)
				code++
				k++
			}
			t.maxCode[length] = code - 1
		}
		code <<= 1
	}
	return t, nil
}

// Decode reads one symbol from r by incremental prefix tracking: one bit is
// shifted into the running code at each step, and as soon as the code falls
// within the range of codes assigned to the current length, the matching
// value is returned. Decode bails after 16 bits without a match.
func (t *HuffmanTable) Decode(r *bits.Reader) (byte, bool) {
	var code int
	for length := 1; length <= maxCodeLength; length++ {
		bit, ok := r.ReadBits(1)
		if !ok {
			return 0, false
		}
		code = code<<1 | int(bit)
		if t.maxCode[length] != -1 && code <= t.maxCode[length] {
			idx := t.valPtr[length] + (code - t.minCode[length])
			return t.Values[idx], true
		}
	}
	return 0, false
}

// Encode writes the canonical code for symbol to w. ok is false if symbol
// has no assigned code in this table.
func (t *HuffmanTable) Encode(w *bits.Writer, symbol byte) (ok bool) {
	length := t.encLen[symbol]
	if length == 0 {
		return false
	}
	w.WriteBits(uint32(t.encCode[symbol]), int(length))
	return true
}

// parseDHT reads one or more Huffman tables packed into a single DHT
// segment payload, following ITU-T T.81 section B.2.4.2.
func parseDHT(payload []byte) ([]*HuffmanTable, error) {
	var tables []*HuffmanTable
	off := 0
	for off < len(payload) {
		if off+1+maxCodeLength > len(payload) {
			return nil, newErr(Malformed, "DHT", errShortSegment)
		}
		tcTh := payload[off]
		off++
		class := tcTh >> 4
		dest := tcTh & 0x0f

		var counts [maxCodeLength]byte
		total := 0
		for i := 0; i < maxCodeLength; i++ {
			counts[i] = payload[off+i]
			total += int(counts[i])
		}
		off += maxCodeLength

		if off+total > len(payload) {
			return nil, newErr(Malformed, "DHT", errShortSegment)
		}
		values := make([]byte, total)
		copy(values, payload[off:off+total])
		off += total

		t, err := NewHuffmanTable(class, dest, counts, values)
		if err != nil {
			return nil, newErr(Malformed, "DHT", err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// marshal serializes the table to its DHT-payload encoding (the class and
// destination byte, 16 length counts, then the concatenated value list).
func (t *HuffmanTable) marshal() []byte {
	buf := make([]byte, 1+maxCodeLength+len(t.Values))
	buf[0] = t.Class<<4 | t.Destination
	copy(buf[1:1+maxCodeLength], t.Counts[:])
	copy(buf[1+maxCodeLength:], t.Values)
	return buf
}

// Complete reports whether every code of the canonical assignment fits in
// its length, i.e. no length's code count overflows the space left over by
// shorter codes: for each length l with codes, maxCode[l] <= (1<<l)-1. It
// does not check that every prefix is used (the Annex K tables, for
// example, leave the all-ones codes unassigned).
func (t *HuffmanTable) Complete() bool {
	for l := 1; l <= maxCodeLength; l++ {
		if t.maxCode[l] == -1 {
			continue
		}
		if t.maxCode[l] > (1<<uint(l))-1 {
			return false
		}
	}
	return true
}
