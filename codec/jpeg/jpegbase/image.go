/*
DESCRIPTION
  image.go provides the in-memory JPEG image record: the tagged collection
  of segments produced by the parser and consumed by the serializer.

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

// GenericSegment is an opaque, pass-through segment retained verbatim in
// its original position relative to the other miscellaneous segments.
type GenericSegment struct {
	Marker  byte
	Payload []byte
}

// EntropyCodedSegment holds the unstuffed bitstream of the scan: every
// byte-stuffed 0xff 0x00 pair has been collapsed to a literal 0xff.
type EntropyCodedSegment struct {
	Data []byte
}

// Image is the parsed representation of a baseline-sequential JPEG: all
// miscellaneous segments in original order, up to four each of DC and AC
// Huffman tables and quantization tables (indexed by destination), a
// single frame header, a single scan header, and a single entropy-coded
// segment. Each Image exclusively owns its buffers; nothing is shared
// across Image values.
type Image struct {
	Misc []GenericSegment

	DCTables [4]*HuffmanTable
	ACTables [4]*HuffmanTable
	QTables  [4]*QuantizationTable

	Frame *FrameHeader
	Scan  *ScanHeader
	ECS   *EntropyCodedSegment
}

// DeepCopy returns an Image with no storage shared with img, so that the
// copy can be mutated (e.g. by a requantizer) without affecting img.
func (img *Image) DeepCopy() *Image {
	out := &Image{}

	if img.Misc != nil {
		out.Misc = make([]GenericSegment, len(img.Misc))
		for i, m := range img.Misc {
			p := make([]byte, len(m.Payload))
			copy(p, m.Payload)
			out.Misc[i] = GenericSegment{Marker: m.Marker, Payload: p}
		}
	}

	for i, t := range img.DCTables {
		if t != nil {
			cp := *t
			cp.Values = append([]byte(nil), t.Values...)
			out.DCTables[i] = &cp
		}
	}
	for i, t := range img.ACTables {
		if t != nil {
			cp := *t
			cp.Values = append([]byte(nil), t.Values...)
			out.ACTables[i] = &cp
		}
	}
	for i, q := range img.QTables {
		if q != nil {
			cp := *q
			out.QTables[i] = &cp
		}
	}

	if img.Frame != nil {
		f := *img.Frame
		f.Components = append([]FrameComponent(nil), img.Frame.Components...)
		out.Frame = &f
	}
	if img.Scan != nil {
		s := *img.Scan
		s.Components = append([]ScanComponent(nil), img.Scan.Components...)
		out.Scan = &s
	}
	if img.ECS != nil {
		out.ECS = &EntropyCodedSegment{Data: append([]byte(nil), img.ECS.Data...)}
	}

	return out
}
