/*
DESCRIPTION
  scan_test.go provides testing for MCU/block-grid decode and encode in
  scan.go, including the seed end-to-end scenarios and boundary behaviours.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/


package jpegbase

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/jpegroi/codec/jpeg/jpegbase/bits"
)

// newTestImage builds an Image with the Annex K.3 standard Huffman tables
// and Annex K.1 standard quantization tables, ready to have an entropy-coded
// segment attached by Encode.
func newTestImage(comps []FrameComponent, lines, samplesPerLine uint16) *Image {
	img := &Image{}
	img.DCTables[0] = DefaultDCLuminanceTable()
	img.DCTables[1] = DefaultDCChrominanceTable()
	img.ACTables[0] = DefaultACLuminanceTable()
	img.ACTables[1] = DefaultACChrominanceTable()

	lumQ := DefaultLuminanceQuantTable()
	chromQ := DefaultChrominanceQuantTable()
	img.QTables[0] = &QuantizationTable{Destination: 0, Values: lumQ}
	img.QTables[1] = &QuantizationTable{Destination: 1, Values: chromQ}

	img.Frame = &FrameHeader{Precision: 8, Lines: lines, SamplesPerLine: samplesPerLine, Components: comps}

	scanComps := make([]ScanComponent, len(comps))
	for i, c := range comps {
		dcSel, acSel := byte(0), byte(0)
		if c.QuantTableSelector != 0 {
			dcSel, acSel = 1, 1
		}
		scanComps[i] = ScanComponent{Selector: c.Identifier, DCTable: dcSel, ACTable: acSel}
	}
	img.Scan = &ScanHeader{Components: scanComps}
	return img
}

func oneComponentImage(lines, samplesPerLine uint16) *Image {
	return newTestImage([]FrameComponent{
		{Identifier: 1, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 0},
	}, lines, samplesPerLine)
}

// TestScenarioSmallestBlock is seed scenario 1: a 1-component 8x8 image,
// DC=5, all-zero AC.
func TestScenarioSmallestBlock(t *testing.T) {
	img := oneComponentImage(8, 8)
	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{{DC: 5}}},
	}}

	encoded, err := Encode(img, scan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	w := bits.NewWriter()
	if ok := img.DCTables[0].Encode(w, 3); !ok {
		t.Fatal("expected code for DC category 3")
	}
	w.WriteBits(0b101, 3)
	if ok := img.ACTables[0].Encode(w, eob); !ok {
		t.Fatal("expected code for EOB")
	}
	want := w.Flush()

	if diff := cmp.Diff(want, encoded.ECS.Data); diff != "" {
		t.Errorf("ECS mismatch (-want +got):\n%s", diff)
	}

	got, err := Decode(encoded, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Components[0].Blocks[0].DC != 5 {
		t.Errorf("got DC %d, want 5", got.Components[0].Blocks[0].DC)
	}
	for i, v := range got.Components[0].Blocks[0].AC {
		if v != 0 {
			t.Errorf("AC[%d] = %d, want 0", i, v)
		}
	}
}

// TestScenarioSingleZRL is seed scenario 2: DC=0, single non-zero AC at
// position 16 (0-based) of value 1.
func TestScenarioSingleZRL(t *testing.T) {
	img := oneComponentImage(8, 8)
	var blk Block
	blk.AC[16] = 1
	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{blk}},
	}}

	encoded, err := Encode(img, scan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	w := bits.NewWriter()
	img.DCTables[0].Encode(w, 0)
	img.ACTables[0].Encode(w, zrl)
	img.ACTables[0].Encode(w, 0x01)
	w.WriteBits(1, 1)
	img.ACTables[0].Encode(w, eob)
	want := w.Flush()

	if diff := cmp.Diff(want, encoded.ECS.Data); diff != "" {
		t.Errorf("ECS mismatch (-want +got):\n%s", diff)
	}

	got, err := Decode(encoded, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Components[0].Blocks[0].DC != 0 {
		t.Errorf("got DC %d, want 0", got.Components[0].Blocks[0].DC)
	}
	if got.Components[0].Blocks[0].AC[16] != 1 {
		t.Errorf("got AC[16] %d, want 1", got.Components[0].Blocks[0].AC[16])
	}
}

// TestScenarioAllZeroBlockEmitsEOBOnly checks that an all-zero block
// encodes to just DC(0) and EOB, no magnitude bits.
func TestScenarioAllZeroBlockEmitsEOBOnly(t *testing.T) {
	img := oneComponentImage(8, 8)
	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{{}}},
	}}
	encoded, err := Encode(img, scan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	w := bits.NewWriter()
	img.DCTables[0].Encode(w, 0)
	img.ACTables[0].Encode(w, eob)
	want := w.Flush()

	if diff := cmp.Diff(want, encoded.ECS.Data); diff != "" {
		t.Errorf("ECS mismatch (-want +got):\n%s", diff)
	}
}

// TestScenarioMultiComponentSubsampling is seed scenario 4: a 3-component
// image with 2x2 luma and 1x1 chroma must walk 4 luma blocks then 1 Cb then
// 1 Cr per MCU, and each component's decoded plane must recover its own
// distinct per-block DC values in the order they were encoded.
func TestScenarioMultiComponentSubsampling(t *testing.T) {
	img := newTestImage([]FrameComponent{
		{Identifier: 1, HorizontalSampling: 2, VerticalSampling: 2, QuantTableSelector: 0},
		{Identifier: 2, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 1},
		{Identifier: 3, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 1},
	}, 16, 16)

	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 2, BlocksHigh: 2, Blocks: []Block{{DC: 1}, {DC: 2}, {DC: 3}, {DC: 4}}},
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{{DC: 10}}},
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{{DC: 20}}},
	}}

	encoded, err := Encode(img, scan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(encoded, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for i, want := range []int16{1, 2, 3, 4} {
		if got.Components[0].Blocks[i].DC != want {
			t.Errorf("luma block %d: got DC %d, want %d", i, got.Components[0].Blocks[i].DC, want)
		}
	}
	if got.Components[1].Blocks[0].DC != 10 {
		t.Errorf("Cb: got DC %d, want 10", got.Components[1].Blocks[0].DC)
	}
	if got.Components[2].Blocks[0].DC != 20 {
		t.Errorf("Cr: got DC %d, want 20", got.Components[2].Blocks[0].DC)
	}
}

// TestScenarioTruncatedECS is seed scenario 6: a truncated ECS must surface
// HuffmanDecodeError rather than panicking or silently returning a partial
// scan.
func TestScenarioTruncatedECS(t *testing.T) {
	img := oneComponentImage(8, 8)
	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{{DC: 5}}},
	}}
	encoded, err := Encode(img, scan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	encoded.ECS.Data = encoded.ECS.Data[:0]

	_, err = Decode(encoded, DecodeOptions{})
	if err == nil {
		t.Fatal("expected error decoding truncated ECS")
	}
	jerr, ok := err.(*Error)
	if !ok || jerr.Kind != HuffmanDecodeError {
		t.Errorf("got %v, want HuffmanDecodeError", err)
	}
}

// TestDCPredictorModes checks that, with DCPredictor both off and on, DC
// values encoded and then decoded with the same setting come back
// unchanged.
func TestDCPredictorModes(t *testing.T) {
	img := oneComponentImage(16, 8)
	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 1, BlocksHigh: 2, Blocks: []Block{{DC: 5}, {DC: 8}}},
	}}

	for _, predictor := range []bool{false, true} {
		opts := DecodeOptions{DCPredictor: predictor}
		encoded, err := Encode(img, scan, opts)
		if err != nil {
			t.Fatalf("predictor=%v: Encode: %v", predictor, err)
		}
		got, err := Decode(encoded, opts)
		if err != nil {
			t.Fatalf("predictor=%v: Decode: %v", predictor, err)
		}
		if got.Components[0].Blocks[0].DC != 5 || got.Components[0].Blocks[1].DC != 8 {
			t.Errorf("predictor=%v: got DCs %d,%d, want 5,8", predictor,
				got.Components[0].Blocks[0].DC, got.Components[0].Blocks[1].DC)
		}
	}
}
