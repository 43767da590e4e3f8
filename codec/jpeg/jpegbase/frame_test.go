/*
DESCRIPTION
  frame_test.go provides testing for frame header parsing, serialization,
  and block/MCU geometry in frame.go.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/


package jpegbase

import "testing"

// TestFrameHeaderMarshalRoundTrip checks that parseFrameHeader and marshal
// are inverses.
func TestFrameHeaderMarshalRoundTrip(t *testing.T) {
	f := &FrameHeader{
		Precision:      8,
		Lines:          480,
		SamplesPerLine: 640,
		Components: []FrameComponent{
			{Identifier: 1, HorizontalSampling: 2, VerticalSampling: 2, QuantTableSelector: 0},
			{Identifier: 2, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 1},
			{Identifier: 3, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 1},
		},
	}

	got, err := parseFrameHeader(f.marshal())
	if err != nil {
		t.Fatalf("parseFrameHeader: %v", err)
	}
	if got.Precision != f.Precision || got.Lines != f.Lines || got.SamplesPerLine != f.SamplesPerLine {
		t.Fatalf("got %+v, want %+v", got, f)
	}
	if len(got.Components) != len(f.Components) {
		t.Fatalf("got %d components, want %d", len(got.Components), len(f.Components))
	}
	for i := range f.Components {
		if got.Components[i] != f.Components[i] {
			t.Errorf("component %d: got %+v, want %+v", i, got.Components[i], f.Components[i])
		}
	}
}

// TestParseFrameHeaderRejectsNonBaselinePrecision checks that a precision
// other than 8 is reported as Unsupported.
func TestParseFrameHeaderRejectsNonBaselinePrecision(t *testing.T) {
	f := &FrameHeader{
		Precision:      12,
		Lines:          8,
		SamplesPerLine: 8,
		Components:     []FrameComponent{{Identifier: 1, HorizontalSampling: 1, VerticalSampling: 1, QuantTableSelector: 0}},
	}
	_, err := parseFrameHeader(f.marshal())
	if err == nil {
		t.Fatal("expected error for 12-bit precision")
	}
	if jerr, ok := err.(*Error); !ok || jerr.Kind != Unsupported {
		t.Errorf("got %v, want Unsupported", err)
	}
}

// TestComponentBlockGridFormulaDivergence exercises the open question
// between the standard and reference block-count formulas: a component
// sample width that is not a multiple of 8 makes the two differ by one
// block.
func TestComponentBlockGridFormulaDivergence(t *testing.T) {
	f := &FrameHeader{
		Precision:      8,
		Lines:          8,
		SamplesPerLine: 12, // not a multiple of 16 (8*Hmax)
		Components: []FrameComponent{
			{Identifier: 1, HorizontalSampling: 2, VerticalSampling: 1, QuantTableSelector: 0},
		},
	}

	stdW, _ := f.ComponentBlockGrid(0, false)
	legacyW, _ := f.ComponentBlockGrid(0, true)

	// Component sample width: ceil(12*2/2) = 12, so standard gives
	// ceil(12/8) = 2 blocks, while the legacy formula truncates 12/8 = 1.
	if stdW != 2 {
		t.Errorf("standard formula: got %d, want 2", stdW)
	}
	if legacyW != 1 {
		t.Errorf("legacy formula: got %d, want 1", legacyW)
	}
}

// TestMCUGrid checks the MCU count formula against a 3-component 2x2/1x1/1x1
// subsampling layout (scenario 4).
func TestMCUGrid(t *testing.T) {
	f := &FrameHeader{
		Precision:      8,
		Lines:          17,
		SamplesPerLine: 17,
		Components: []FrameComponent{
			{Identifier: 1, HorizontalSampling: 2, VerticalSampling: 2},
			{Identifier: 2, HorizontalSampling: 1, VerticalSampling: 1},
			{Identifier: 3, HorizontalSampling: 1, VerticalSampling: 1},
		},
	}
	cols, rows := f.MCUGrid()
	if cols != 2 || rows != 2 {
		t.Errorf("got %dx%d MCUs, want 2x2", cols, rows)
	}
}
