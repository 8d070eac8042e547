package dbin

import (
	"github.com/math4tots-misc/dbin/bcodec"
)

// renderableKind identifies which variant of Renderable is populated.
type renderableKind uint8

const (
	rnBytes renderableKind = iota
	rnNum
	rnSeq
)

// Renderable is a small, symmetric counterpart to Pattern: a tree of
// numeric leaves and sequences that Render turns back into bytes. It
// exists to make round-trip tests ("render this, then Parse the result
// and check we get the same Value back") cheap to write without needing a
// real sample file on disk; it has no combinators, no Scope, and no
// backtracking, since encoding never needs to search.
type Renderable struct {
	kind renderableKind

	raw []byte // rnBytes

	numWidth  uint8
	numLittle bool
	numFloat  bool
	intVal    int64
	floatVal  float64

	items []Renderable // rnSeq
}

// RBytes renders the literal bytes b verbatim.
func RBytes(b []byte) Renderable {
	return Renderable{kind: rnBytes, raw: append([]byte(nil), b...)}
}

// RU8 renders v as a single unsigned byte.
func RU8(v int64) Renderable { return numRenderable(1, true, v) }

// RI8 is RU8 -- width and byte order don't distinguish signed from
// unsigned at encode time, only DecodeSint/DecodeUint on the reading side
// do.
func RI8(v int64) Renderable { return numRenderable(1, true, v) }

// RLeU16 renders v as a little-endian 16-bit integer.
func RLeU16(v int64) Renderable { return numRenderable(2, true, v) }

// RBeU16 renders v as a big-endian 16-bit integer.
func RBeU16(v int64) Renderable { return numRenderable(2, false, v) }

// RLeU32 renders v as a little-endian 32-bit integer.
func RLeU32(v int64) Renderable { return numRenderable(4, true, v) }

// RBeU32 renders v as a big-endian 32-bit integer.
func RBeU32(v int64) Renderable { return numRenderable(4, false, v) }

// RLeU64 renders v as a little-endian 64-bit integer.
func RLeU64(v int64) Renderable { return numRenderable(8, true, v) }

// RBeU64 renders v as a big-endian 64-bit integer.
func RBeU64(v int64) Renderable { return numRenderable(8, false, v) }

// RLeI16, RBeI16, RLeI32, RBeI32, RLeI64, RBeI64 mirror the unsigned
// helpers; the wire bytes are identical regardless of signedness.
func RLeI16(v int64) Renderable { return numRenderable(2, true, v) }
func RBeI16(v int64) Renderable { return numRenderable(2, false, v) }
func RLeI32(v int64) Renderable { return numRenderable(4, true, v) }
func RBeI32(v int64) Renderable { return numRenderable(4, false, v) }
func RLeI64(v int64) Renderable { return numRenderable(8, true, v) }
func RBeI64(v int64) Renderable { return numRenderable(8, false, v) }

// RLeF32 renders f as a little-endian IEEE-754 single-precision float.
func RLeF32(f float64) Renderable {
	return Renderable{kind: rnNum, numWidth: 4, numLittle: true, numFloat: true, floatVal: f}
}

// RBeF32 renders f as a big-endian IEEE-754 single-precision float.
func RBeF32(f float64) Renderable {
	return Renderable{kind: rnNum, numWidth: 4, numLittle: false, numFloat: true, floatVal: f}
}

// RLeF64 renders f as a little-endian IEEE-754 double-precision float.
func RLeF64(f float64) Renderable {
	return Renderable{kind: rnNum, numWidth: 8, numLittle: true, numFloat: true, floatVal: f}
}

// RBeF64 renders f as a big-endian IEEE-754 double-precision float.
func RBeF64(f float64) Renderable {
	return Renderable{kind: rnNum, numWidth: 8, numLittle: false, numFloat: true, floatVal: f}
}

// RCStr renders s followed by a terminating NUL byte.
func RCStr(s string) Renderable {
	return RBytes(append([]byte(s), 0))
}

// RSeq concatenates the bytes of each item in order.
func RSeq(items ...Renderable) Renderable {
	return Renderable{kind: rnSeq, items: append([]Renderable(nil), items...)}
}

func numRenderable(width uint8, little bool, v int64) Renderable {
	return Renderable{kind: rnNum, numWidth: width, numLittle: little, intVal: v}
}

// Render encodes r into a freshly allocated byte slice.
func Render(r Renderable) []byte {
	var out []byte
	renderInto(&out, r)
	return out
}

func renderInto(out *[]byte, r Renderable) {
	switch r.kind {
	case rnBytes:
		*out = append(*out, r.raw...)

	case rnNum:
		endian := bcodec.Little
		if !r.numLittle {
			endian = bcodec.Big
		}
		var b []byte
		switch {
		case r.numFloat && r.numWidth == 4:
			b = bcodec.EncodeFloat32(endian, float32(r.floatVal))
		case r.numFloat && r.numWidth == 8:
			b = bcodec.EncodeFloat64(endian, r.floatVal)
		default:
			b = bcodec.EncodeUint(endian, uint64(r.intVal), int(r.numWidth))
		}
		*out = append(*out, b...)

	case rnSeq:
		for _, item := range r.items {
			renderInto(out, item)
		}
	}
}
