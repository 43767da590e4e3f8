/*
DESCRIPTION
  scanheader.go provides scan header (SOS) parsing and serialization.

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

import "fmt"

// ScanComponent is one scan component specification parameter, per
// ITU-T T.81 section B.2.3.
type ScanComponent struct {
	Selector byte
	DCTable  byte
	ACTable  byte
}

// ScanHeader is the baseline-sequential SOS header: a single scan covering
// selection_start=0, selection_end=63, successive approximation 0.
type ScanHeader struct {
	Components []ScanComponent
}

// parseScanHeader decodes an SOS payload following section B.2.3.
func parseScanHeader(payload []byte, frame *FrameHeader) (*ScanHeader, error) {
	if len(payload) < 1 {
		return nil, newErr(Malformed, "SOS", errShortSegment)
	}
	nComp := int(payload[0])
	want := 1 + nComp*2 + 3
	if len(payload) < want {
		return nil, newErr(Malformed, "SOS", errShortSegment)
	}

	s := &ScanHeader{Components: make([]ScanComponent, nComp)}
	for i := 0; i < nComp; i++ {
		b := payload[1+i*2:]
		s.Components[i] = ScanComponent{
			Selector: b[0],
			DCTable:  b[1] >> 4,
			ACTable:  b[1] & 0x0f,
		}
	}

	tail := payload[1+nComp*2:]
	selStart, selEnd, approx := tail[0], tail[1], tail[2]
	if selStart != 0 || selEnd != 63 || approx != 0 {
		return nil, newErr(Unsupported, "SOS: non-baseline spectral selection/approximation", nil)
	}

	if frame != nil {
		if len(s.Components) != len(frame.Components) {
			return nil, newErr(Malformed, "SOS: scan/frame component count mismatch", nil)
		}
		for i, sc := range s.Components {
			if sc.Selector != frame.Components[i].Identifier {
				return nil, newErr(Malformed, fmt.Sprintf("SOS: component %d out of frame order", i), nil)
			}
		}
	}
	return s, nil
}

// marshal serializes the scan header back to its SOS payload encoding.
func (s *ScanHeader) marshal() []byte {
	buf := make([]byte, 1+len(s.Components)*2+3)
	buf[0] = byte(len(s.Components))
	for i, c := range s.Components {
		b := buf[1+i*2:]
		b[0] = c.Selector
		b[1] = c.DCTable<<4 | c.ACTable
	}
	tail := buf[1+len(s.Components)*2:]
	tail[0] = 0  // selection_start
	tail[1] = 63 // selection_end
	tail[2] = 0  // approximation
	return buf
}
