/*
DESCRIPTION
  roundtrip_test.go checks the round-trip and idempotence laws L1-L5.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/


package jpegbase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestL4ScanRoundTrip checks that decoding an entropy-coded segment and
// re-encoding it against the same tables reproduces the original bytes.
func TestL4ScanRoundTrip(t *testing.T) {
	img := newTestImage([]FrameComponent{
		{Identifier: 1, HorizontalSampling: 2, VerticalSampling: 1, QuantTableSelector: 0},
		{Identifier: 2, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 1},
	}, 8, 16)

	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 2, BlocksHigh: 1, Blocks: []Block{{DC: 3, AC: [63]int16{1: 2}}, {DC: -4}}},
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{{DC: 7}}},
	}}

	original, err := Encode(img, scan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(original, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	reencoded, err := Encode(img, decoded, DecodeOptions{})
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}

	if diff := cmp.Diff(original.ECS.Data, reencoded.ECS.Data); diff != "" {
		t.Errorf("ECS round-trip mismatch (-original +reencoded):\n%s", diff)
	}
}

// TestL5ImageRoundTrip checks that parse(serialize(parse(F))) is
// structurally equal to parse(F).
func TestL5ImageRoundTrip(t *testing.T) {
	img := newTestImage([]FrameComponent{
		{Identifier: 1, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 0},
	}, 8, 8)
	img.Misc = []GenericSegment{{Marker: APP0, Payload: []byte{1, 2, 3}}}

	scan := &DecodedScan{Components: []ComponentPlane{
		{BlocksWide: 1, BlocksHigh: 1, Blocks: []Block{{DC: 9, AC: [63]int16{0: 1}}}},
	}}
	full, err := Encode(img, scan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	f, err := full.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	parsed1, err := ParseImage(f, DecodeOptions{})
	if err != nil {
		t.Fatalf("ParseImage (1st): %v", err)
	}

	f2, err := parsed1.Marshal()
	if err != nil {
		t.Fatalf("Marshal (2nd): %v", err)
	}

	parsed2, err := ParseImage(f2, DecodeOptions{})
	if err != nil {
		t.Fatalf("ParseImage (2nd): %v", err)
	}

	opt := cmpopts.IgnoreUnexported(HuffmanTable{})
	if diff := cmp.Diff(parsed1, parsed2, opt); diff != "" {
		t.Errorf("image round-trip mismatch (-1st +2nd):\n%s", diff)
	}
}

// TestL2HuffmanSymbolRoundTrip is covered in huffman_test.go
// (TestHuffmanTableDecodeEncodeRoundTrip); L3 size-coding invertibility is
// exercised directly here since extend/unextend have no exported surface
// of their own.
func TestL3SizeCodingInvertible(t *testing.T) {
	for c := -2000; c <= 2000; c += 37 {
		size := bitSize(c)
		if size > 11 {
			continue
		}
		coded := unextend(c, size)
		if got := extend(coded, size); got != c {
			t.Errorf("extend(unextend(%d, %d)) = %d, want %d", c, size, got, c)
		}
	}
}
