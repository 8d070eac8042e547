// Package bcodec implements the fixed-width integer and IEEE-754 float
// encoding rules shared by dbin's numeric Pattern readers and its
// Renderable writers.
//
// Integers are decoded with the following rule, applied uniformly
// regardless of width:
//
//   - The width's bytes are reassembled into a uint64 according to the
//     requested Endian.
//   - For an unsigned read, that uint64 is returned directly as an
//     int64 -- widening, not truncating, so a set high bit produces a
//     negative Go int64 for 64-bit reads. This mirrors the teacher's
//     2's-complement bit-pattern handling in its own immediate decoder
//     rather than inventing a new widening rule.
//   - For a signed read, the top bit of the narrow width is checked; if
//     set, the value is sign-extended to 64 bits by subtracting
//     1<<(8*width) from the unsigned interpretation.
//
// Floats are decoded by reassembling the width's bytes into a uint32 or
// uint64 the same way, then reinterpreting the bits with
// math.Float32frombits / math.Float64frombits -- no arithmetic scaling
// is involved.
//
// • Supported widths: 1, 2, 4, 8 bytes for integers; 4, 8 bytes for
// floats.
//
// • Out-of-range widths panic -- they indicate a bug in the caller
// (Pattern only ever constructs well-known widths), not a malformed
// input.
package bcodec
