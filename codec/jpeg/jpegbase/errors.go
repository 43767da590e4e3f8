/*
DESCRIPTION
  errors.go provides the error kinds and error type used throughout the
  codec kernel.

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

import "github.com/pkg/errors"

// Kind categorises a decode/encode failure so callers can branch on it
// without string matching.
type Kind int

const (
	// Io covers short reads, read errors, and missing files.
	Io Kind = iota

	// Malformed covers bad SOI, bad Ls, and ECS byte-stuffing violations.
	Malformed

	// Unsupported covers non-baseline SOF, multi-scan images, restart
	// markers, arithmetic coding, sample precision != 8, and component
	// counts outside {1,3}.
	Unsupported

	// HuffmanDecodeError covers a 16-bit decode bail and unknown table
	// destinations.
	HuffmanDecodeError

	// HuffmanEncodeError covers a symbol with no assigned code and a
	// coefficient magnitude exceeding its size-category limit.
	HuffmanEncodeError
)

func (k Kind) String() string {
	switch k {
	case Io:
		return "Io"
	case Malformed:
		return "Malformed"
	case Unsupported:
		return "Unsupported"
	case HuffmanDecodeError:
		return "HuffmanDecodeError"
	case HuffmanEncodeError:
		return "HuffmanEncodeError"
	default:
		return "Unknown"
	}
}

// Error is the error type returned across every package boundary in
// jpegbase. Context identifies where the failure occurred (a marker byte,
// an MCU/component/block coordinate, or a byte offset), in whatever terms
// are available to the caller that detected it.
type Error struct {
	Kind    Kind
	Context string
	Err     error // underlying cause, if any; may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Context + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Context
}

func (e *Error) Unwrap() error { return e.Err }

// newErr constructs an *Error, wrapping cause (which may be nil) with
// github.com/pkg/errors so a stack trace is attached at the point of
// failure, matching the wrapping convention used throughout h264dec.
func newErr(kind Kind, context string, cause error) *Error {
	var wrapped error
	if cause != nil {
		wrapped = errors.WithStack(cause)
	}
	return &Error{Kind: kind, Context: context, Err: wrapped}
}
