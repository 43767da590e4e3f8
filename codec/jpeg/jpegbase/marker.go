/*
DESCRIPTION
  marker.go provides JPEG marker byte constants, as defined in ISO/IEC
  10918-1.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package jpegbase implements the coefficient-level codec kernel for
// baseline sequential JPEG: segment parsing, Huffman decode/encode, and
// MCU-grid scan (de)coding. It performs neither IDCT nor colour conversion.
package jpegbase

// Marker byte constants, per Table B.1 of ITU-T T.81.
const (
	markerFill byte = 0xff // fill byte preceding a marker

	SOF0  byte = 0xc0 // baseline DCT
	SOF1  byte = 0xc1
	SOF2  byte = 0xc2
	SOF3  byte = 0xc3
	SOF5  byte = 0xc5
	SOF6  byte = 0xc6
	SOF7  byte = 0xc7
	SOF9  byte = 0xc9
	SOF10 byte = 0xca
	SOF11 byte = 0xcb
	SOF13 byte = 0xcd
	SOF14 byte = 0xce
	SOF15 byte = 0xcf

	DHT byte = 0xc4
	DAC byte = 0xcc // arithmetic coding conditioning, unsupported

	RST0 byte = 0xd0
	RST7 byte = 0xd7

	SOI byte = 0xd8
	EOI byte = 0xd9
	SOS byte = 0xda
	DQT byte = 0xdb
	DNL byte = 0xdc
	DRI byte = 0xdd
	DHP byte = 0xde
	EXP byte = 0xdf

	APP0  byte = 0xe0
	APP15 byte = 0xef

	COM byte = 0xfe

	stuffZero byte = 0x00 // byte that follows a stuffed 0xff inside an ECS
)

// isBaselineSOF reports whether m is SOF0, the only SOF subtype this
// package supports. Other SOF markers (progressive, extended, lossless,
// arithmetic-coded) are recognised only so they can be rejected with
// Unsupported rather than mis-parsed as generic segments.
func isBaselineSOF(m byte) bool { return m == SOF0 }

// isAnySOF reports whether m is any of the SOF0-SOF15 marker family.
func isAnySOF(m byte) bool {
	switch {
	case m >= SOF0 && m <= SOF3:
		return true
	case m >= SOF5 && m <= SOF7:
		return true
	case m >= SOF9 && m <= SOF11:
		return true
	case m >= SOF13 && m <= SOF15:
		return true
	}
	return false
}

// isRST reports whether m is a restart marker RST0-RST7.
func isRST(m byte) bool { return m >= RST0 && m <= RST7 }

// isApp reports whether m is an application segment marker APP0-APP15.
func isApp(m byte) bool { return m >= APP0 && m <= APP15 }

// hasNoPayload reports whether marker m is standalone, carrying no Ls
// length field or payload of its own.
func hasNoPayload(m byte) bool {
	return m == SOI || m == EOI || isRST(m)
}
