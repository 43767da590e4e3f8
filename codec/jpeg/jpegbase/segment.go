/*
DESCRIPTION
  segment.go provides the marker-segment stream parser: SOI validation,
  marker dispatch, DHT/DQT table collection with replace-by-destination
  semantics, and entropy-coded-segment collection with byte-unstuffing.

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
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	errShortSegment = errors.New("short read")
	errBadSOI       = errors.New("missing or malformed SOI")
	errBadMarker    = errors.New("expected a marker")
)

// parser is a byte-granular read cursor over a whole JPEG file, used only
// by the segment-stream parser; entropy-coded data is handed off to the
// bit-level reader in package bits once its byte extent is known.
type parser struct {
	data []byte
	pos  int
}

func (p *parser) u8() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	b := p.data[p.pos]
	p.pos++
	return b, true
}

// readMarker reads a marker, defined as one or more 0xff fill bytes
// terminated by a non-zero, non-0xff byte, and returns the terminating
// byte. Fill-byte runs are only tolerated here, between segments; they are
// not valid inside a segment payload or inside the ECS.
func (p *parser) readMarker() (byte, error) {
	b, ok := p.u8()
	if !ok {
		return 0, newErr(Io, "reading marker", errShortSegment)
	}
	if b != markerFill {
		return 0, newErr(Malformed, "expected 0xff lead byte of a marker", errBadMarker)
	}
	for {
		b, ok = p.u8()
		if !ok {
			return 0, newErr(Io, "reading marker", errShortSegment)
		}
		if b == markerFill {
			continue // fill byte, keep scanning
		}
		if b == 0x00 {
			return 0, newErr(Malformed, "0xff00 is not a valid marker", nil)
		}
		return b, nil
	}
}

// readSegmentPayload reads a 2-byte big-endian Ls (which includes its own
// two bytes) followed by Ls-2 payload bytes, for the segment identified by
// context (used only for error messages).
func (p *parser) readSegmentPayload(context string) ([]byte, error) {
	if p.pos+2 > len(p.data) {
		return nil, newErr(Malformed, context, errShortSegment)
	}
	ls := binary.BigEndian.Uint16(p.data[p.pos:])
	if ls < 2 {
		return nil, newErr(Malformed, fmt.Sprintf("%s: Ls=%d < 2", context, ls), nil)
	}
	p.pos += 2
	n := int(ls) - 2
	if p.pos+n > len(p.data) {
		return nil, newErr(Malformed, context, errShortSegment)
	}
	payload := p.data[p.pos : p.pos+n]
	p.pos += n
	return payload, nil
}

// collectECS reads the entropy-coded segment following an SOS header: all
// bytes up to (but not including) the next unstuffed marker, with every
// 0xff 0x00 pair collapsed to a literal 0xff.
func (p *parser) collectECS(tolerateFillBytes bool) (*EntropyCodedSegment, error) {
	out := make([]byte, 0, 4096)
	for {
		b, ok := p.u8()
		if !ok {
			return nil, newErr(Malformed, "ECS: unterminated scan", errShortSegment)
		}
		if b != markerFill {
			out = append(out, b)
			continue
		}

		// b == 0xff: either a stuffed literal, a real marker, or (inside
		// the ECS) an invalid fill run.
		next, ok := p.u8()
		if !ok {
			return nil, newErr(Malformed, "ECS: unterminated scan", errShortSegment)
		}
		switch {
		case next == stuffZero:
			out = append(out, markerFill)
		case next == markerFill:
			if !tolerateFillBytes {
				return nil, newErr(Malformed, "ECS: 0xff 0xff fill not permitted inside entropy-coded data", nil)
			}
			p.pos-- // re-examine the second 0xff as the start of the next pair
		default:
			// A real marker: rewind so the caller's next readMarker call
			// sees it.
			p.pos -= 2
			return &EntropyCodedSegment{Data: out}, nil
		}
	}
}

// ParseImage parses a baseline-sequential JPEG byte stream into an Image.
// The whole parse fails as a unit; no partial Image is ever returned.
func ParseImage(data []byte, opts DecodeOptions) (*Image, error) {
	p := &parser{data: data}

	b0, ok0 := p.u8()
	b1, ok1 := p.u8()
	if !ok0 || !ok1 || b0 != markerFill || b1 != SOI {
		return nil, newErr(Malformed, "expected SOI", errBadSOI)
	}

	img := &Image{}
	sawSOS := false

	for {
		m, err := p.readMarker()
		if err != nil {
			return nil, err
		}

		switch {
		case m == EOI:
			return img, nil

		case m == SOF0:
			if img.Frame != nil {
				return nil, newErr(Unsupported, "multiple frame headers", nil)
			}
			payload, err := p.readSegmentPayload("SOF0")
			if err != nil {
				return nil, err
			}
			fh, err := parseFrameHeader(payload)
			if err != nil {
				return nil, err
			}
			img.Frame = fh

		case isAnySOF(m):
			return nil, newErr(Unsupported, fmt.Sprintf("non-baseline SOF marker %#x", m), nil)

		case isRST(m):
			return nil, newErr(Unsupported, "restart markers", nil)

		case m == DAC:
			return nil, newErr(Unsupported, "arithmetic coding", nil)

		case m == DHT:
			payload, err := p.readSegmentPayload("DHT")
			if err != nil {
				return nil, err
			}
			tables, err := parseDHT(payload)
			if err != nil {
				return nil, err
			}
			for _, t := range tables {
				if t.Destination > 3 {
					return nil, newErr(Malformed, "DHT: destination > 3", nil)
				}
				if t.Class == classDC {
					img.DCTables[t.Destination] = t
				} else {
					img.ACTables[t.Destination] = t
				}
			}

		case m == DQT:
			payload, err := p.readSegmentPayload("DQT")
			if err != nil {
				return nil, err
			}
			tables, err := parseDQT(payload)
			if err != nil {
				return nil, err
			}
			for _, q := range tables {
				if q.Destination > 3 {
					return nil, newErr(Malformed, "DQT: destination > 3", nil)
				}
				img.QTables[q.Destination] = q
			}

		case m == SOS:
			if img.Frame == nil {
				return nil, newErr(Malformed, "SOS before SOF", nil)
			}
			if sawSOS {
				return nil, newErr(Unsupported, "multiple scans", nil)
			}
			sawSOS = true
			payload, err := p.readSegmentPayload("SOS")
			if err != nil {
				return nil, err
			}
			sh, err := parseScanHeader(payload, img.Frame)
			if err != nil {
				return nil, err
			}
			img.Scan = sh

			ecs, err := p.collectECS(opts.TolerateFillBytes)
			if err != nil {
				return nil, err
			}
			img.ECS = ecs

		default:
			payload, err := p.readSegmentPayload(fmt.Sprintf("marker %#x", m))
			if err != nil {
				return nil, err
			}
			cp := make([]byte, len(payload))
			copy(cp, payload)
			img.Misc = append(img.Misc, GenericSegment{Marker: m, Payload: cp})
		}
	}
}
