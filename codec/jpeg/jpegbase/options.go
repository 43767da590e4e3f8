/*
DESCRIPTION
  options.go exposes the three source-ambiguity switches resolved against
  the reference implementation: DC predictor, per-component block-count
  formula, and ECS fill-byte tolerance.

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

// DecodeOptions selects between the standards-correct behaviour and the
// reference implementation's behaviour at three points where they diverge.
// The zero value is standards-correct except for DCPredictor, where the
// zero value matches the reference (no differential DC) so that decoding
// then re-encoding a reference-produced file round-trips bit-exactly by
// default.
type DecodeOptions struct {
	// DCPredictor enables Annex F differential DC coding: each block's DC
	// value is the running sum of per-block differences rather than an
	// absolute value. The reference implementation omits this.
	DCPredictor bool

	// LegacyBlockCount selects the reference's per-component block-count
	// formula (ceil(W*H_i/Hmax)/8, with the final division truncating
	// rather than rounding up) instead of the standard
	// ceil(ceil(W*H_i/Hmax)/8). The two differ by one block when a
	// component's sample dimension is not a multiple of 8.
	LegacyBlockCount bool

	// TolerateFillBytes accepts a 0xff 0xff sequence inside the
	// entropy-coded segment as padding instead of failing the parse.
	// Baseline JPEG does not produce this sequence; the reference
	// tolerates it.
	TolerateFillBytes bool
}
