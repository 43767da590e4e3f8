/*
DESCRIPTION
  writer_test.go provides testing for the bit writing utilities in writer.go.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)
*/


package bits

import (
	"bytes"
	"testing"
)

func TestWriteBitsAndFlush(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x8, 4)
	w.WriteBits(0x3, 2)
	w.WriteBits(0xf, 4)
	w.WriteBits(0x23, 6)

	got := w.Flush()
	want := []byte{0x8f, 0xe3}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

// TestFlushPadsWithOnes checks that a partial final byte is padded with
// 1-bits, not zeros, per the JPEG convention.
func TestFlushPadsWithOnes(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x5, 3) // "101"

	got := w.Flush()
	want := []byte{0b10111111}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestFlushByteAligned(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0xab, 8)
	got := w.Flush()
	want := []byte{0xab}
	if !bytes.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

// TestReaderWriterRoundTrip checks L1-adjacent behaviour at the bit level:
// writing then reading back the same bits returns the same values.
func TestReaderWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	vals := []struct {
		v uint32
		n int
	}{
		{0x3, 2}, {0x1, 1}, {0xabc, 12}, {0x0, 4}, {0xffff, 16},
	}
	for _, e := range vals {
		w.WriteBits(e.v, e.n)
	}
	buf := w.Flush()

	r := NewReader(buf)
	for i, e := range vals {
		got, ok := r.ReadBits(e.n)
		if !ok {
			t.Fatalf("entry %d: unexpected exhaustion", i)
		}
		if got != e.v {
			t.Errorf("entry %d: got %#x, want %#x", i, got, e.v)
		}
	}
}
