/*
DESCRIPTION
  default_tables.go provides the standard Huffman and quantization tables
  of Annex K of ITU-T T.81, used by encoders that have no better tables of
  their own and by tests exercising a "standard tables" fixture.

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

// zigzagOrder maps a zigzag scan index to its position in an 8x8
// row-major (natural order) block, per Annex A Figure A.6. Both
// transmitted coefficients and quantization tables are already in this
// zigzag order, so the core kernel never needs to materialize the
// unzigzagged 8x8 grid; this table exists only to build the default
// tables below from their natural-order definitions.
var zigzagOrder = [64]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// toZigzag reorders a natural (row-major) 8x8 table into zigzag order.
func toZigzag(natural [64]int) [64]int {
	var z [64]int
	for zigzagIdx, naturalIdx := range zigzagOrder {
		z[zigzagIdx] = natural[naturalIdx]
	}
	return z
}

// standardLuminanceQuant and standardChrominanceQuant are the Annex K.1
// example quantization tables at quality 50, given in natural (row-major)
// order; DefaultQuantTable converts them to the zigzag order used on the
// wire.
var standardLuminanceQuant = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var standardChrominanceQuant = [64]int{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

// DefaultLuminanceQuantTable returns the Annex K.1 example luminance
// quantization table in zigzag (wire) order.
func DefaultLuminanceQuantTable() [64]int { return toZigzag(standardLuminanceQuant) }

// DefaultChrominanceQuantTable returns the Annex K.1 example chrominance
// quantization table in zigzag (wire) order.
func DefaultChrominanceQuantTable() [64]int { return toZigzag(standardChrominanceQuant) }

// Annex K.3 standard Huffman tables, given as per-length counts (index 0
// is length 1) and concatenated value lists.
var (
	stdDCLuminanceCounts = [maxCodeLength]byte{0, 1, 5, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0}
	stdDCLuminanceValues = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	stdDCChrominanceCounts = [maxCodeLength]byte{0, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0}
	stdDCChrominanceValues = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	stdACLuminanceCounts = [maxCodeLength]byte{0, 2, 1, 3, 3, 2, 4, 3, 5, 5, 4, 4, 0, 0, 1, 0x7d}
	stdACLuminanceValues = []byte{
		0x01, 0x02, 0x03, 0x00, 0x04, 0x11, 0x05, 0x12,
		0x21, 0x31, 0x41, 0x06, 0x13, 0x51, 0x61, 0x07,
		0x22, 0x71, 0x14, 0x32, 0x81, 0x91, 0xa1, 0x08,
		0x23, 0x42, 0xb1, 0xc1, 0x15, 0x52, 0xd1, 0xf0,
		0x24, 0x33, 0x62, 0x72, 0x82, 0x09, 0x0a, 0x16,
		0x17, 0x18, 0x19, 0x1a, 0x25, 0x26, 0x27, 0x28,
		0x29, 0x2a, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39,
		0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48, 0x49,
		0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58, 0x59,
		0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68, 0x69,
		0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78, 0x79,
		0x7a, 0x83, 0x84, 0x85, 0x86, 0x87, 0x88, 0x89,
		0x8a, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97, 0x98,
		0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
		0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6,
		0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3, 0xc4, 0xc5,
		0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2, 0xd3, 0xd4,
		0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda, 0xe1, 0xe2,
		0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9, 0xea,
		0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
		0xf9, 0xfa,
	}

	stdACChrominanceCounts = [maxCodeLength]byte{0, 2, 1, 2, 4, 4, 3, 4, 7, 5, 4, 4, 0, 1, 2, 0x77}
	stdACChrominanceValues = []byte{
		0x00, 0x01, 0x02, 0x03, 0x11, 0x04, 0x05, 0x21,
		0x31, 0x06, 0x12, 0x41, 0x51, 0x07, 0x61, 0x71,
		0x13, 0x22, 0x32, 0x81, 0x08, 0x14, 0x42, 0x91,
		0xa1, 0xb1, 0xc1, 0x09, 0x23, 0x33, 0x52, 0xf0,
		0x15, 0x62, 0x72, 0xd1, 0x0a, 0x16, 0x24, 0x34,
		0xe1, 0x25, 0xf1, 0x17, 0x18, 0x19, 0x1a, 0x26,
		0x27, 0x28, 0x29, 0x2a, 0x35, 0x36, 0x37, 0x38,
		0x39, 0x3a, 0x43, 0x44, 0x45, 0x46, 0x47, 0x48,
		0x49, 0x4a, 0x53, 0x54, 0x55, 0x56, 0x57, 0x58,
		0x59, 0x5a, 0x63, 0x64, 0x65, 0x66, 0x67, 0x68,
		0x69, 0x6a, 0x73, 0x74, 0x75, 0x76, 0x77, 0x78,
		0x79, 0x7a, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
		0x88, 0x89, 0x8a, 0x92, 0x93, 0x94, 0x95, 0x96,
		0x97, 0x98, 0x99, 0x9a, 0xa2, 0xa3, 0xa4, 0xa5,
		0xa6, 0xa7, 0xa8, 0xa9, 0xaa, 0xb2, 0xb3, 0xb4,
		0xb5, 0xb6, 0xb7, 0xb8, 0xb9, 0xba, 0xc2, 0xc3,
		0xc4, 0xc5, 0xc6, 0xc7, 0xc8, 0xc9, 0xca, 0xd2,
		0xd3, 0xd4, 0xd5, 0xd6, 0xd7, 0xd8, 0xd9, 0xda,
		0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7, 0xe8, 0xe9,
		0xea, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7, 0xf8,
		0xf9, 0xfa,
	}
)

// DefaultDCLuminanceTable returns the Annex K.3 standard DC luminance
// Huffman table (destination 0).
func DefaultDCLuminanceTable() *HuffmanTable {
	t, err := NewHuffmanTable(classDC, 0, stdDCLuminanceCounts, stdDCLuminanceValues)
	if err != nil {
		panic(err) // the standard table is always well-formed
	}
	return t
}

// DefaultDCChrominanceTable returns the Annex K.3 standard DC chrominance
// Huffman table (destination 1).
func DefaultDCChrominanceTable() *HuffmanTable {
	t, err := NewHuffmanTable(classDC, 1, stdDCChrominanceCounts, stdDCChrominanceValues)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultACLuminanceTable returns the Annex K.3 standard AC luminance
// Huffman table (destination 0).
func DefaultACLuminanceTable() *HuffmanTable {
	t, err := NewHuffmanTable(classAC, 0, stdACLuminanceCounts, stdACLuminanceValues)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultACChrominanceTable returns the Annex K.3 standard AC chrominance
// Huffman table (destination 1).
func DefaultACChrominanceTable() *HuffmanTable {
	t, err := NewHuffmanTable(classAC, 1, stdACChrominanceCounts, stdACChrominanceValues)
	if err != nil {
		panic(err)
	}
	return t
}
