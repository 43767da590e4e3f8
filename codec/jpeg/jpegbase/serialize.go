/*
DESCRIPTION
  serialize.go assembles an Image back into a baseline-sequential JPEG byte
  stream: SOI, miscellaneous segments, quantization tables, frame header,
  Huffman tables, scan header, re-stuffed entropy-coded data, EOI.

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
	"bytes"
	"encoding/binary"
)

// writeSegment appends a marker, its 2-byte Ls, and payload to buf.
func writeSegment(buf *bytes.Buffer, marker byte, payload []byte) {
	buf.WriteByte(markerFill)
	buf.WriteByte(marker)
	var ls [2]byte
	binary.BigEndian.PutUint16(ls[:], uint16(len(payload)+2))
	buf.Write(ls[:])
	buf.Write(payload)
}

// stuff appends data to buf with every literal 0xff byte escaped as 0xff 0x00.
func stuff(buf *bytes.Buffer, data []byte) {
	for _, b := range data {
		buf.WriteByte(b)
		if b == markerFill {
			buf.WriteByte(stuffZero)
		}
	}
}

// Marshal serializes img back to a complete JPEG byte stream. Quantization
// and Huffman tables are emitted as a single DQT and a single DHT segment
// each, covering every populated destination; the DQT segment is placed
// immediately before the frame header and the DHT segment immediately after
// it, before the scan header. This need not match the segment layout of whatever stream
// produced img, since marker order among tables and the frame header is
// not semantically significant as long as each table precedes its first use.
func (img *Image) Marshal() ([]byte, error) {
	if img.Frame == nil {
		return nil, newErr(Malformed, "marshal: image has no frame header", nil)
	}
	if img.Scan == nil || img.ECS == nil {
		return nil, newErr(Malformed, "marshal: image has no scan", nil)
	}

	var buf bytes.Buffer
	buf.WriteByte(markerFill)
	buf.WriteByte(SOI)

	for _, m := range img.Misc {
		writeSegment(&buf, m.Marker, m.Payload)
	}

	var dqt bytes.Buffer
	for _, q := range img.QTables {
		if q != nil {
			dqt.Write(q.marshal())
		}
	}
	if dqt.Len() > 0 {
		writeSegment(&buf, DQT, dqt.Bytes())
	}

	writeSegment(&buf, SOF0, img.Frame.marshal())

	var dht bytes.Buffer
	for _, t := range img.DCTables {
		if t != nil {
			dht.Write(t.marshal())
		}
	}
	for _, t := range img.ACTables {
		if t != nil {
			dht.Write(t.marshal())
		}
	}
	if dht.Len() > 0 {
		writeSegment(&buf, DHT, dht.Bytes())
	}

	writeSegment(&buf, SOS, img.Scan.marshal())
	stuff(&buf, img.ECS.Data)

	buf.WriteByte(markerFill)
	buf.WriteByte(EOI)

	return buf.Bytes(), nil
}
