/*
DESCRIPTION
  roi.go applies a per-pixel region-of-interest quality map to a decoded
  JPEG scan, simulating each 8x8 block having been quantized at its own
  effective quality while keeping the image's existing quantization tables
  unchanged, so the result remains a syntactically ordinary baseline JPEG.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package roi applies a spatially varying quality map to a decoded JPEG
// scan. It is a policy layer on top of the coefficient-level codec kernel
// in package jpegbase: it never touches the bitstream directly.
package roi

import (
	"fmt"
	"math"

	"github.com/ausocean/jpegroi/codec/jpeg/jpegbase"
)

// dcCeiling and acCeiling are the largest magnitudes representable by the
// baseline DC (11-bit) and AC (10-bit) size categories respectively.
const (
	dcCeiling = 2047
	acCeiling = 1023
)

// Map is a region-of-interest quality map in full-resolution pixel
// coordinates, one value per pixel, in [1,100].
type Map struct {
	Width, Height int
	Values        []byte
}

// NewMap validates and wraps values as a Map. values must hold
// exactly width*height bytes in row-major order.
func NewMap(width, height int, values []byte) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("roi: invalid map dimensions %dx%d", width, height)
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("roi: map has %d values, want %d", len(values), width*height)
	}
	return &Map{Width: width, Height: height, Values: values}, nil
}

// blockQuality returns the maximum ROI quality over the half-open pixel
// rectangle [x0,x1)x[y0,y1), clamped to the map's bounds. A rectangle
// entirely outside the map (a padding block beyond the image's real
// extent) falls back to fallback.
func (m *Map) blockQuality(x0, y0, x1, y1, fallback int) int {
	if m == nil {
		return fallback
	}
	if x0 >= m.Width || y0 >= m.Height || x1 <= 0 || y1 <= 0 {
		return fallback
	}
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > m.Width {
		x1 = m.Width
	}
	if y1 > m.Height {
		y1 = m.Height
	}

	best := 0
	for y := y0; y < y1; y++ {
		row := m.Values[y*m.Width:]
		for x := x0; x < x1; x++ {
			if v := int(row[x]); v > best {
				best = v
			}
		}
	}
	if best < 1 {
		return fallback
	}
	if best > 100 {
		best = 100
	}
	return best
}

// clip bounds v to [lo,hi].
func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scaleQuantTable rescales an 8-bit base quantization table to quality,
// following the IJG quality-scaling formula: quality is first clamped to
// [1,99]; below 50 the scale factor is 5000/quality percent, from 50 up it
// is 200-2*quality percent (2 percent at the clamped maximum of 99).
func scaleQuantTable(base [64]int, quality int) [64]int {
	q := clip(quality, 1, 99)
	var scale int
	if q < 50 {
		scale = 5000 / q
	} else {
		scale = 200 - q*2
	}

	var out [64]int
	for i, b := range base {
		v := (b*scale + 50) / 100
		out[i] = clip(v, 1, 255)
	}
	return out
}

// baseTable returns the Annex K base quantization table conventionally
// associated with component index ci: luminance for the first component
// (Y), chrominance for any other (Cb/Cr).
func baseTable(ci int) [64]int {
	if ci == 0 {
		return jpegbase.DefaultLuminanceQuantTable()
	}
	return jpegbase.DefaultChrominanceQuantTable()
}

// rescaleCoeff simulates level having been quantized at step qBlock instead
// of qOld, then re-expresses the result as a level against qOld, so the
// transmitted table stays qOld. The two roundings are not inverses of each
// other: the intermediate rounding at qBlock's (generally coarser)
// granularity is where the quality reduction's information loss actually
// happens.
func rescaleCoeff(level, qOld, qBlock, ceiling int) int16 {
	if qOld <= 0 {
		qOld = 1
	}
	if qBlock <= 0 {
		qBlock = 1
	}
	intermediate := math.Round(float64(level) * float64(qOld) / float64(qBlock))
	final := math.Round(intermediate * float64(qBlock) / float64(qOld))
	return int16(clip(int(final), -ceiling, ceiling))
}

// Logger is the minimal logging capability package roi needs for
// per-block requantization tracing. github.com/ausocean/utils/logging.Logger
// satisfies it; callers outside that ecosystem can supply their own.
type Logger interface {
	Debug(msg string, params ...interface{})
}

// Apply returns a new DecodedScan with every block of scan rescaled to its
// effective ROI quality. m may be nil, in which case defaultQuality applies
// uniformly. scan is not modified. img supplies the frame geometry and the
// quantization tables each component's coefficients were (and remain)
// expressed against. log is optional; when supplied, the effective quality
// chosen for every block is traced through it at Debug level.
func Apply(img *jpegbase.Image, scan *jpegbase.DecodedScan, m *Map, defaultQuality int, log ...Logger) (*jpegbase.DecodedScan, error) {
	var tracer Logger
	if len(log) > 0 {
		tracer = log[0]
	}
	if img.Frame == nil {
		return nil, fmt.Errorf("roi: image has no frame header")
	}
	if defaultQuality < 1 || defaultQuality > 100 {
		return nil, fmt.Errorf("roi: default quality %d out of [1,100]", defaultQuality)
	}
	if len(scan.Components) != len(img.Frame.Components) {
		return nil, fmt.Errorf("roi: scan/frame component count mismatch")
	}

	hmax, vmax := img.Frame.Hmax(), img.Frame.Vmax()
	out := &jpegbase.DecodedScan{Components: make([]jpegbase.ComponentPlane, len(scan.Components))}

	for ci, comp := range img.Frame.Components {
		plane := scan.Components[ci]
		q := img.QTables[comp.QuantTableSelector]
		if q == nil {
			return nil, fmt.Errorf("roi: component %d: no quantization table at destination %d", ci, comp.QuantTableSelector)
		}
		base := baseTable(ci)
		h, v := int(comp.HorizontalSampling), int(comp.VerticalSampling)

		newPlane := jpegbase.ComponentPlane{
			BlocksWide: plane.BlocksWide,
			BlocksHigh: plane.BlocksHigh,
			Blocks:     make([]jpegbase.Block, len(plane.Blocks)),
		}

		for row := 0; row < plane.BlocksHigh; row++ {
			for col := 0; col < plane.BlocksWide; col++ {
				x0 := col * 8 * hmax / h
				x1 := (col + 1) * 8 * hmax / h
				y0 := row * 8 * vmax / v
				y1 := (row + 1) * 8 * vmax / v

				quality := m.blockQuality(x0, y0, x1, y1, defaultQuality)
				qBlock := scaleQuantTable(base, quality)
				if tracer != nil {
					tracer.Debug("requantizing block", "component", ci, "col", col, "row", row, "quality", quality)
				}

				src := plane.Blocks[row*plane.BlocksWide+col]
				var dst jpegbase.Block
				dst.DC = rescaleCoeff(int(src.DC), q.Values[0], qBlock[0], dcCeiling)
				for i := 0; i < 63; i++ {
					dst.AC[i] = rescaleCoeff(int(src.AC[i]), q.Values[i+1], qBlock[i+1], acCeiling)
				}
				newPlane.Blocks[row*plane.BlocksWide+col] = dst
			}
		}
		out.Components[ci] = newPlane
	}
	return out, nil
}
