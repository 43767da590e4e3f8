/*
DESCRIPTION
  frame.go provides frame header (SOF0) parsing and serialization.

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
	"fmt"
)

// FrameComponent describes one component's entry in a frame header, per
// ITU-T T.81 section B.2.2.
type FrameComponent struct {
	Identifier         byte
	HorizontalSampling byte // 1-4
	VerticalSampling   byte // 1-4
	QuantTableSelector byte
}

// FrameHeader is the baseline-sequential (SOF0) frame header.
type FrameHeader struct {
	Precision      byte // must be 8
	Lines          uint16
	SamplesPerLine uint16
	Components     []FrameComponent
}

// parseFrameHeader decodes an SOF0 payload following section B.2.2.
func parseFrameHeader(payload []byte) (*FrameHeader, error) {
	if len(payload) < 6 {
		return nil, newErr(Malformed, "SOF0", errShortSegment)
	}

	f := &FrameHeader{
		Precision:      payload[0],
		Lines:          binary.BigEndian.Uint16(payload[1:3]),
		SamplesPerLine: binary.BigEndian.Uint16(payload[3:5]),
	}
	nComp := int(payload[5])
	if nComp != 1 && nComp != 3 {
		return nil, newErr(Unsupported, fmt.Sprintf("SOF0: %d components", nComp), nil)
	}
	if f.Precision != 8 {
		return nil, newErr(Unsupported, fmt.Sprintf("SOF0: precision %d", f.Precision), nil)
	}

	const compSize = 3
	want := 6 + nComp*compSize
	if len(payload) < want {
		return nil, newErr(Malformed, "SOF0", errShortSegment)
	}

	f.Components = make([]FrameComponent, nComp)
	for i := 0; i < nComp; i++ {
		b := payload[6+i*compSize:]
		h := b[1] >> 4
		v := b[1] & 0x0f
		if h < 1 || h > 4 || v < 1 || v > 4 {
			return nil, newErr(Malformed, fmt.Sprintf("SOF0: component %d sampling factors", i), nil)
		}
		f.Components[i] = FrameComponent{
			Identifier:         b[0],
			HorizontalSampling: h,
			VerticalSampling:   v,
			QuantTableSelector: b[2],
		}
	}
	return f, nil
}

// marshal serializes the frame header back to its SOF0 payload encoding.
func (f *FrameHeader) marshal() []byte {
	buf := make([]byte, 6+len(f.Components)*3)
	buf[0] = f.Precision
	binary.BigEndian.PutUint16(buf[1:3], f.Lines)
	binary.BigEndian.PutUint16(buf[3:5], f.SamplesPerLine)
	buf[5] = byte(len(f.Components))
	for i, c := range f.Components {
		b := buf[6+i*3:]
		b[0] = c.Identifier
		b[1] = c.HorizontalSampling<<4 | c.VerticalSampling
		b[2] = c.QuantTableSelector
	}
	return buf
}

// Hmax returns the maximum horizontal sampling factor across components.
func (f *FrameHeader) Hmax() int {
	m := 0
	for _, c := range f.Components {
		if int(c.HorizontalSampling) > m {
			m = int(c.HorizontalSampling)
		}
	}
	return m
}

// Vmax returns the maximum vertical sampling factor across components.
func (f *FrameHeader) Vmax() int {
	m := 0
	for _, c := range f.Components {
		if int(c.VerticalSampling) > m {
			m = int(c.VerticalSampling)
		}
	}
	return m
}

// ceilDiv returns ceil(a/b) for positive a, b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ComponentBlockGrid returns the block-grid width and height (in 8x8
// blocks) for component i, per the geometry invariants: component samples
// are ceil(W*H_i/Hmax) by ceil(H*V_i/Vmax), and the block grid is that
// divided by 8, rounded up. If legacy is true, the reference's formula is
// used instead (ceil(W*H_i/Hmax)/8 without re-applying ceil to the 8-block
// rounding), which can differ by one block when the sample dimension is
// not a multiple of 8.
func (f *FrameHeader) ComponentBlockGrid(i int, legacy bool) (bw, bh int) {
	c := f.Components[i]
	hmax, vmax := f.Hmax(), f.Vmax()

	sw := ceilDiv(int(f.SamplesPerLine)*int(c.HorizontalSampling), hmax)
	sh := ceilDiv(int(f.Lines)*int(c.VerticalSampling), vmax)

	if legacy {
		return sw / 8, sh / 8
	}
	return ceilDiv(sw, 8), ceilDiv(sh, 8)
}

// MCUGrid returns the number of MCU columns and rows covering the image.
func (f *FrameHeader) MCUGrid() (cols, rows int) {
	hmax, vmax := f.Hmax(), f.Vmax()
	cols = ceilDiv(int(f.SamplesPerLine), 8*hmax)
	rows = ceilDiv(int(f.Lines), 8*vmax)
	return
}
