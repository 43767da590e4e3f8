/*
DESCRIPTION
  quant.go provides quantization table (DQT) parsing and serialization.

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

import "encoding/binary"

// QuantizationTable holds 64 coefficients in zigzag order, as transmitted
// in a DQT segment, along with the destination they were assigned to and
// whether they were coded at 16-bit precision.
type QuantizationTable struct {
	Destination byte
	Precision16 bool // true if each coefficient was coded as 16 bits
	Values      [64]int
}

// parseDQT reads one or more quantization tables packed into a single DQT
// segment payload, following ITU-T T.81 section B.2.4.1.
func parseDQT(payload []byte) ([]*QuantizationTable, error) {
	var tables []*QuantizationTable
	off := 0
	for off < len(payload) {
		if off+1 > len(payload) {
			return nil, newErr(Malformed, "DQT", errShortSegment)
		}
		pqTq := payload[off]
		off++
		precision16 := pqTq>>4 != 0
		dest := pqTq & 0x0f

		n := 64
		size := n
		if precision16 {
			size = n * 2
		}
		if off+size > len(payload) {
			return nil, newErr(Malformed, "DQT", errShortSegment)
		}

		q := &QuantizationTable{Destination: dest, Precision16: precision16}
		if precision16 {
			for i := 0; i < n; i++ {
				q.Values[i] = int(binary.BigEndian.Uint16(payload[off+2*i:]))
			}
		} else {
			for i := 0; i < n; i++ {
				q.Values[i] = int(payload[off+i])
			}
		}
		off += size
		tables = append(tables, q)
	}
	return tables, nil
}

// marshal serializes the quantization table to its DQT-payload encoding
// (the precision/destination byte followed by 64 coefficients).
func (q *QuantizationTable) marshal() []byte {
	size := 1 + 64
	if q.Precision16 {
		size = 1 + 128
	}
	buf := make([]byte, size)

	var pqTq byte
	if q.Precision16 {
		pqTq = 0x10
	}
	buf[0] = pqTq | q.Destination

	if q.Precision16 {
		for i, v := range q.Values {
			binary.BigEndian.PutUint16(buf[1+2*i:], uint16(v))
		}
	} else {
		for i, v := range q.Values {
			buf[1+i] = byte(v)
		}
	}
	return buf
}
