/*
DESCRIPTION
  scan.go walks the MCU grid to decode an entropy-coded segment into dense
  per-component block planes, and to re-encode block planes back into an
  entropy-coded segment. Only DC/AC Huffman coding is performed: no IDCT,
  no upsampling, no colour transform.

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
	zrl = 0xf0 // AC run/size byte meaning "16 zero coefficients, no value"
	eob = 0x00 // AC run/size byte meaning "no further nonzero coefficients"
)

// ComponentPlane is one component's dense block grid, in raster (block-row,
// block-col) order. Its dimensions are the component's block grid
// (FrameHeader.ComponentBlockGrid); blocks that only pad out the last MCU
// row/column are not stored in it.
type ComponentPlane struct {
	BlocksWide, BlocksHigh int
	Blocks                 []Block
}

func (p *ComponentPlane) at(col, row int) *Block { return &p.Blocks[row*p.BlocksWide+col] }

// DecodedScan holds every component's decoded block plane, in the same
// order as the frame header's component list.
type DecodedScan struct {
	Components []ComponentPlane
}

// bitSize returns the number of bits needed to represent abs(v); bitSize(0)
// is 0.
func bitSize(v int) int {
	if v < 0 {
		v = -v
	}
	n := 0
	for v > 0 {
		n++
		v >>= 1
	}
	return n
}

// extend implements the EXTEND procedure of ITU-T T.81 section F.2.2.1:
// given a t-bit magnitude v read from the bitstream, it recovers the signed
// difference/coefficient value.
func extend(v, t int) int {
	if t == 0 {
		return 0
	}
	vt := 1 << uint(t-1)
	if v < vt {
		return v - (1 << uint(t)) + 1
	}
	return v
}

// unextend is the inverse of extend: given a signed value and its category
// t = bitSize(value), it returns the t-bit magnitude to append to the
// bitstream after the category's Huffman code.
func unextend(value, t int) int {
	if value >= 0 {
		return value
	}
	return value + (1 << uint(t)) - 1
}

func decodeBlock(r *bits.Reader, dcTable, acTable *HuffmanTable, prevDC *int, predictor bool) (Block, error) {
	var blk Block

	size, ok := dcTable.Decode(r)
	if !ok {
		return blk, newErr(HuffmanDecodeError, "DC coefficient", nil)
	}
	if size > 11 {
		return blk, newErr(HuffmanDecodeError, fmt.Sprintf("DC category %d out of range", size), nil)
	}
	var v int
	if size > 0 {
		bitsv, ok := r.ReadBits(int(size))
		if !ok {
			return blk, newErr(HuffmanDecodeError, "DC magnitude bits", nil)
		}
		v = extend(int(bitsv), int(size))
	}
	if predictor {
		*prevDC += v
		blk.DC = int16(*prevDC)
	} else {
		blk.DC = int16(v)
	}

	k := 0
	for k < 63 {
		rs, ok := acTable.Decode(r)
		if !ok {
			return blk, newErr(HuffmanDecodeError, "AC coefficient", nil)
		}
		run := int(rs >> 4)
		size := int(rs & 0x0f)

		if size == 0 {
			if run == 15 {
				k += 16
				continue
			}
			break // EOB
		}

		k += run
		if k >= 63 {
			return blk, newErr(HuffmanDecodeError, "AC run overruns block", nil)
		}
		bitsv, ok := r.ReadBits(size)
		if !ok {
			return blk, newErr(HuffmanDecodeError, "AC magnitude bits", nil)
		}
		blk.AC[k] = int16(extend(int(bitsv), size))
		k++
	}
	return blk, nil
}

func encodeBlock(w *bits.Writer, dcTable, acTable *HuffmanTable, blk Block, prevDC *int, predictor bool) error {
	var diff int
	if predictor {
		diff = int(blk.DC) - *prevDC
		*prevDC = int(blk.DC)
	} else {
		diff = int(blk.DC)
	}

	size := bitSize(diff)
	if size > 11 {
		return newErr(HuffmanEncodeError, fmt.Sprintf("DC difference %d exceeds 11-bit category", diff), nil)
	}
	if ok := dcTable.Encode(w, byte(size)); !ok {
		return newErr(HuffmanEncodeError, fmt.Sprintf("DC category %d has no code", size), nil)
	}
	if size > 0 {
		w.WriteBits(uint32(unextend(diff, size)), size)
	}

	run := 0
	for k := 0; k < 63; k++ {
		v := int(blk.AC[k])
		if v == 0 {
			run++
			continue
		}
		for run >= 16 {
			if ok := acTable.Encode(w, zrl); !ok {
				return newErr(HuffmanEncodeError, "AC table has no ZRL code", nil)
			}
			run -= 16
		}
		size := bitSize(v)
		if size > 10 {
			return newErr(HuffmanEncodeError, fmt.Sprintf("AC coefficient %d exceeds 10-bit category", v), nil)
		}
		if ok := acTable.Encode(w, byte(run<<4|size)); !ok {
			return newErr(HuffmanEncodeError, fmt.Sprintf("AC run/size %d/%d has no code", run, size), nil)
		}
		w.WriteBits(uint32(unextend(v, size)), size)
		run = 0
	}
	if run > 0 {
		if ok := acTable.Encode(w, eob); !ok {
			return newErr(HuffmanEncodeError, "AC table has no EOB code", nil)
		}
	}
	return nil
}

// Decode walks img's MCU grid and decodes every block of every component
// into a DecodedScan. Padding blocks added to complete the final MCU
// row/column are decoded (they are present in the bitstream) but discarded,
// since they carry no information about the image proper.
func Decode(img *Image, opts DecodeOptions) (*DecodedScan, error) {
	if img.Frame == nil || img.Scan == nil || img.ECS == nil {
		return nil, newErr(Malformed, "decode: incomplete image", nil)
	}

	nComp := len(img.Frame.Components)
	out := &DecodedScan{Components: make([]ComponentPlane, nComp)}
	for i := range out.Components {
		bw, bh := img.Frame.ComponentBlockGrid(i, opts.LegacyBlockCount)
		out.Components[i] = ComponentPlane{BlocksWide: bw, BlocksHigh: bh, Blocks: make([]Block, bw*bh)}
	}

	dcTables := make([]*HuffmanTable, nComp)
	acTables := make([]*HuffmanTable, nComp)
	for i, sc := range img.Scan.Components {
		if int(sc.DCTable) >= len(img.DCTables) || int(sc.ACTable) >= len(img.ACTables) {
			return nil, newErr(HuffmanDecodeError, fmt.Sprintf("component %d: Huffman table destination out of range", i), nil)
		}
		dcTables[i] = img.DCTables[sc.DCTable]
		acTables[i] = img.ACTables[sc.ACTable]
		if dcTables[i] == nil || acTables[i] == nil {
			return nil, newErr(HuffmanDecodeError, fmt.Sprintf("component %d: missing Huffman table", i), nil)
		}
	}

	r := bits.NewReader(img.ECS.Data)
	prevDC := make([]int, nComp)
	cols, rows := img.Frame.MCUGrid()

	for mcuRow := 0; mcuRow < rows; mcuRow++ {
		for mcuCol := 0; mcuCol < cols; mcuCol++ {
			for ci, comp := range img.Frame.Components {
				h, v := int(comp.HorizontalSampling), int(comp.VerticalSampling)
				plane := &out.Components[ci]
				for vy := 0; vy < v; vy++ {
					for hx := 0; hx < h; hx++ {
						blk, err := decodeBlock(r, dcTables[ci], acTables[ci], &prevDC[ci], opts.DCPredictor)
						if err != nil {
							if jerr, ok := err.(*Error); ok {
								jerr.Context = fmt.Sprintf("MCU (%d,%d) component %d block %d: %s", mcuCol, mcuRow, ci, vy*h+hx, jerr.Context)
							}
							return nil, err
						}
						col := mcuCol*h + hx
						row := mcuRow*v + vy
						if col < plane.BlocksWide && row < plane.BlocksHigh {
							*plane.at(col, row) = blk
						}
					}
				}
			}
		}
	}
	return out, nil
}

// Encode re-encodes scan against img's frame/scan headers and Huffman
// tables, returning a deep copy of img (headers and tables included, no
// storage shared with img) with a freshly built entropy-coded segment. Padding blocks needed to complete
// the final MCU row/column are synthesised by replicating the plane's last
// real column/row, matching how an encoder producing img would have filled
// them.
func Encode(img *Image, scan *DecodedScan, opts DecodeOptions) (*Image, error) {
	if img.Frame == nil || img.Scan == nil {
		return nil, newErr(Malformed, "encode: incomplete image", nil)
	}

	nComp := len(img.Frame.Components)
	dcTables := make([]*HuffmanTable, nComp)
	acTables := make([]*HuffmanTable, nComp)
	for i, sc := range img.Scan.Components {
		dcTables[i] = img.DCTables[sc.DCTable]
		acTables[i] = img.ACTables[sc.ACTable]
		if dcTables[i] == nil || acTables[i] == nil {
			return nil, newErr(Malformed, fmt.Sprintf("component %d: missing Huffman table", i), nil)
		}
	}

	w := bits.NewWriter()
	prevDC := make([]int, nComp)
	cols, rows := img.Frame.MCUGrid()

	for mcuRow := 0; mcuRow < rows; mcuRow++ {
		for mcuCol := 0; mcuCol < cols; mcuCol++ {
			for ci, comp := range img.Frame.Components {
				h, v := int(comp.HorizontalSampling), int(comp.VerticalSampling)
				plane := &scan.Components[ci]
				for vy := 0; vy < v; vy++ {
					for hx := 0; hx < h; hx++ {
						col := mcuCol*h + hx
						row := mcuRow*v + vy
						src := clampCoord(col, plane.BlocksWide-1)
						srow := clampCoord(row, plane.BlocksHigh-1)
						blk := *plane.at(src, srow)
						if err := encodeBlock(w, dcTables[ci], acTables[ci], blk, &prevDC[ci], opts.DCPredictor); err != nil {
							if jerr, ok := err.(*Error); ok {
								jerr.Context = fmt.Sprintf("MCU (%d,%d) component %d block %d: %s", mcuCol, mcuRow, ci, vy*h+hx, jerr.Context)
							}
							return nil, err
						}
					}
				}
			}
		}
	}

	out := img.DeepCopy()
	out.ECS = &EntropyCodedSegment{Data: w.Flush()}
	return out, nil
}

func clampCoord(v, max int) int {
	if v > max {
		return max
	}
	return v
}
