package dbin

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant of Value is populated.
type Kind uint8

const (
	// KindInt marks a Value holding a signed 64-bit integer.
	KindInt Kind = iota

	// KindFloat marks a Value holding an IEEE-754 binary64 float.
	KindFloat

	// KindBytes marks a Value holding an immutable byte string.
	KindBytes

	// KindString marks a Value holding immutable UTF-8 text.
	KindString

	// KindSeq marks a Value holding an ordered sequence of Values.
	KindSeq
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBytes:
		return "Bytes"
	case KindString:
		return "String"
	case KindSeq:
		return "Seq"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is the universe of parsed or computed values: a tagged union of
// Int, Float, Bytes, String, and Seq.
//
// A Value is immutable once constructed. Bytes, String, and Seq values
// are backed by a Go slice/string, which already gives cheap, aliasing-safe
// clones on copy -- the same "shared ownership" property the source
// implementation gets from reference-counted handles, but for free, since
// nothing in this package ever mutates a Value's backing storage after
// construction.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	bytes []byte
	str   string
	seq   []Value
}

// Int constructs an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Bytes constructs a byte-string Value. The caller must not mutate b after
// passing it in.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// String constructs a text Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Seq constructs a sequence Value. The caller must not mutate items after
// passing it in.
func Seq(items []Value) Value { return Value{kind: KindSeq, seq: items} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Int returns v's integer payload and true iff v.Kind() == KindInt.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Float returns v's float payload and true iff v.Kind() == KindFloat.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// BytesValue returns v's byte-string payload and true iff
// v.Kind() == KindBytes.
func (v Value) BytesValue() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return v.bytes, true
}

// StringValue returns v's text payload and true iff v.Kind() == KindString.
func (v Value) StringValue() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// SeqValue returns v's sequence payload and true iff v.Kind() == KindSeq.
func (v Value) SeqValue() ([]Value, bool) {
	if v.kind != KindSeq {
		return nil, false
	}
	return v.seq, true
}

// Equal reports whether v and other are structurally equal: same Kind,
// same payload, with Seq compared element-wise.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBytes:
		return bytes.Equal(v.bytes, other.bytes)
	case KindString:
		return v.str == other.str
	case KindSeq:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String provides a programmer-friendly debugging representation of v.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBytes:
		return fmt.Sprintf("%x", v.bytes)
	case KindString:
		return strconv.Quote(v.str)
	case KindSeq:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.seq {
			if i != 0 {
				b.WriteByte(' ')
			}
			b.WriteString(item.String())
		}
		b.WriteByte(']')
		return b.String()
	default:
		return "<invalid Value>"
	}
}
