package dbin

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/math4tots-misc/dbin/bcodec"
)

// patternKind identifies which variant of Pattern is populated.
type patternKind uint8

const (
	patExact patternKind = iota
	patNum
	patCStr
	patArray
	patAllOf
	patAnyOf
	patStore
	patMap
	patScoped
	patToMap
)

// MapFunc is the signature of a (Pattern).Map transform. f must be pure
// with respect to the Cursor; reading the Scope is fine, writing to it is
// undefined.
type MapFunc func(scope *Scope, value Value) (Value, error)

// Pattern is the recursive AST of the parser language: primitive numeric
// readers, Exact literal matches, CStr, the Array/AllOf/AnyOf combinators,
// and the Store/Map/Scoped/ToMap pseudo-patterns that adjust Scope or the
// produced Value without themselves consuming bytes.
//
// A Pattern is immutable after construction and may be reused across many
// Parse calls, including concurrently, as long as no Map closure captures
// externally mutable state.
type Pattern struct {
	kind patternKind

	exact []byte // patExact

	numWidth  uint8 // patNum: 1, 2, 4, or 8
	numLittle bool  // patNum
	numSigned bool  // patNum
	numFloat  bool  // patNum

	inner     *Pattern   // patArray, patStore, patMap, patScoped, patToMap
	countExpr Expr       // patArray
	children  []Pattern  // patAllOf, patAnyOf
	key       Key        // patStore
	mapFn     MapFunc    // patMap
	mapKeys   []NamedKey // patToMap
}

// NamedKey pairs a Scope Key with the human-readable label ToMap should
// give it in its output, since a Key on its own (a bare int64) carries no
// display name of its own -- see samples/bitmap for a format that supplies
// one per field.
type NamedKey struct {
	Key  Key
	Name string
}

func boxed(p Pattern) *Pattern {
	pp := p
	return &pp
}

// Primitive numeric readers. Widths are always decoded into an Int (for
// the integer readers) or a Float (for the float readers) regardless of
// declared width -- see bcodec for the widening rules.
var (
	U8 = Pattern{kind: patNum, numWidth: 1, numLittle: true, numSigned: false}
	I8 = Pattern{kind: patNum, numWidth: 1, numLittle: true, numSigned: true}

	LeU16 = Pattern{kind: patNum, numWidth: 2, numLittle: true, numSigned: false}
	BeU16 = Pattern{kind: patNum, numWidth: 2, numLittle: false, numSigned: false}
	LeU32 = Pattern{kind: patNum, numWidth: 4, numLittle: true, numSigned: false}
	BeU32 = Pattern{kind: patNum, numWidth: 4, numLittle: false, numSigned: false}
	LeU64 = Pattern{kind: patNum, numWidth: 8, numLittle: true, numSigned: false}
	BeU64 = Pattern{kind: patNum, numWidth: 8, numLittle: false, numSigned: false}

	LeI16 = Pattern{kind: patNum, numWidth: 2, numLittle: true, numSigned: true}
	BeI16 = Pattern{kind: patNum, numWidth: 2, numLittle: false, numSigned: true}
	LeI32 = Pattern{kind: patNum, numWidth: 4, numLittle: true, numSigned: true}
	BeI32 = Pattern{kind: patNum, numWidth: 4, numLittle: false, numSigned: true}
	LeI64 = Pattern{kind: patNum, numWidth: 8, numLittle: true, numSigned: true}
	BeI64 = Pattern{kind: patNum, numWidth: 8, numLittle: false, numSigned: true}

	LeF32 = Pattern{kind: patNum, numWidth: 4, numLittle: true, numFloat: true}
	BeF32 = Pattern{kind: patNum, numWidth: 4, numLittle: false, numFloat: true}
	LeF64 = Pattern{kind: patNum, numWidth: 8, numLittle: true, numFloat: true}
	BeF64 = Pattern{kind: patNum, numWidth: 8, numLittle: false, numFloat: true}

	// CStr reads a null-terminated, UTF-8-encoded string, consuming and
	// discarding the terminating zero byte.
	CStr = Pattern{kind: patCStr}
)

// Exact returns a Pattern that expects the literal byte sequence bs at the
// current position.
func Exact(bs []byte) Pattern {
	return Pattern{kind: patExact, exact: append([]byte(nil), bs...)}
}

// LeMagicU16 returns a Pattern matching the little-endian encoding of x,
// yielding Int(x) on success.
func LeMagicU16(x uint16) Pattern {
	return Exact(bcodec.EncodeUint(bcodec.Little, uint64(x), 2)).MapVal(Int(int64(x)))
}

// BeMagicU16 returns a Pattern matching the big-endian encoding of x,
// yielding Int(x) on success.
func BeMagicU16(x uint16) Pattern {
	return Exact(bcodec.EncodeUint(bcodec.Big, uint64(x), 2)).MapVal(Int(int64(x)))
}

// MagicU16 is LeMagicU16: little-endian is the default when no endianness
// is specified.
func MagicU16(x uint16) Pattern { return LeMagicU16(x) }

// LeMagicU32 returns a Pattern matching the little-endian encoding of x,
// yielding Int(x) on success.
func LeMagicU32(x uint32) Pattern {
	return Exact(bcodec.EncodeUint(bcodec.Little, uint64(x), 4)).MapVal(Int(int64(x)))
}

// BeMagicU32 returns a Pattern matching the big-endian encoding of x,
// yielding Int(x) on success.
func BeMagicU32(x uint32) Pattern {
	return Exact(bcodec.EncodeUint(bcodec.Big, uint64(x), 4)).MapVal(Int(int64(x)))
}

// MagicU32 is LeMagicU32.
func MagicU32(x uint32) Pattern { return LeMagicU32(x) }

// LeMagicU64 returns a Pattern matching the little-endian encoding of x,
// yielding Int(x) on success. Note that x's high bit, if set, widens to a
// negative Int -- see the bcodec package docs on unsigned-to-signed
// widening.
func LeMagicU64(x uint64) Pattern {
	return Exact(bcodec.EncodeUint(bcodec.Little, x, 8)).MapVal(Int(int64(x)))
}

// BeMagicU64 returns a Pattern matching the big-endian encoding of x,
// yielding Int(x) on success.
func BeMagicU64(x uint64) Pattern {
	return Exact(bcodec.EncodeUint(bcodec.Big, x, 8)).MapVal(Int(int64(x)))
}

// MagicU64 is LeMagicU64.
func MagicU64(x uint64) Pattern { return LeMagicU64(x) }

// ArrayOf returns a Pattern that evaluates count against the current
// Scope, requires a non-negative Int result, and repeats inner that many
// times, collecting the results into a Seq.
//
// • Backtracking cost: none of its own -- a failure partway through is
//   propagated immediately, with no partial-array recovery.
//
// • Allocation: one Value slice of the resolved length, regardless of
//   whether inner itself allocates.
func ArrayOf(inner Pattern, count Expr) Pattern {
	return Pattern{kind: patArray, inner: boxed(inner), countExpr: count}
}

// AllOf returns a Pattern that evaluates each child in order, at the
// position the previous child left the cursor, and yields a Seq of their
// results. Any child's failure is propagated immediately.
func AllOf(children ...Pattern) Pattern {
	return Pattern{kind: patAllOf, children: append([]Pattern(nil), children...)}
}

// AnyOf returns a Pattern that tries each child in order, all starting at
// the same position, and commits to the first success.
//
// • Backtracking cost: every failing alternative's Scope writes are NOT
//   rolled back, only the Cursor is restored -- wrap a branch in Scoped if
//   you need Store effects to disappear on backtrack.
//
// • Evaluating AnyOf() with no children fails with KindEmpty.
func AnyOf(children ...Pattern) Pattern {
	return Pattern{kind: patAnyOf, children: append([]Pattern(nil), children...)}
}

// Store returns a Pattern that parses p, binds the result into the
// current Scope frame under key, and returns the result unchanged.
func (p Pattern) Store(key Key) Pattern {
	return Pattern{kind: patStore, inner: boxed(p), key: key}
}

// Map returns a Pattern that parses p and transforms the result with f.
func (p Pattern) Map(f MapFunc) Pattern {
	return Pattern{kind: patMap, inner: boxed(p), mapFn: f}
}

// MapVal returns a Pattern that parses p, discards its result, and yields
// the literal v instead. Commonly used to tag AnyOf branches.
func (p Pattern) MapVal(v Value) Pattern {
	return p.Map(func(_ *Scope, _ Value) (Value, error) { return v, nil })
}

// Add returns a Pattern that parses p and adds rhs to the result:
// Int+Int and Float+Float combine in kind, Int+Float/Float+Int produce a
// Float, and String+String concatenates. Any other combination fails with
// KindTypeError.
func (p Pattern) Add(rhs Value) Pattern {
	return p.Map(func(_ *Scope, lhs Value) (Value, error) {
		return addValues(lhs, rhs)
	})
}

// Scoped returns a Pattern that pushes a new Scope frame, parses p against
// it, and pops the frame again before returning -- on success or failure
// alike. Store bindings made inside p are therefore invisible once Scoped
// returns, unlike a bare Store at the enclosing scope.
func (p Pattern) Scoped() Pattern {
	return Pattern{kind: patScoped, inner: boxed(p)}
}

// ToMap returns a Pattern that parses p, discards its result, and instead
// builds a Seq of Seq{String(name), Value} pairs, one per entry in keys,
// read from the Scope frame current when p finishes parsing. The caller
// supplies each pair's display name explicitly -- a bare Key has no name
// of its own to fall back on.
func (p Pattern) ToMap(keys []NamedKey) Pattern {
	return Pattern{kind: patToMap, inner: boxed(p), mapKeys: append([]NamedKey(nil), keys...)}
}

func addValues(lhs, rhs Value) (Value, error) {
	switch {
	case lhs.kind == KindInt && rhs.kind == KindInt:
		a, _ := lhs.Int()
		b, _ := rhs.Int()
		return Int(a + b), nil
	case lhs.kind == KindFloat && rhs.kind == KindFloat:
		a, _ := lhs.Float()
		b, _ := rhs.Float()
		return Float(a + b), nil
	case lhs.kind == KindFloat && rhs.kind == KindInt:
		a, _ := lhs.Float()
		b, _ := rhs.Int()
		return Float(a + float64(b)), nil
	case lhs.kind == KindInt && rhs.kind == KindFloat:
		a, _ := lhs.Int()
		b, _ := rhs.Float()
		return Float(float64(a) + b), nil
	case lhs.kind == KindString && rhs.kind == KindString:
		a, _ := lhs.StringValue()
		b, _ := rhs.StringValue()
		return String(a + b), nil
	default:
		return Value{}, newError(KindTypeError, 0, "could not add %s and %s", lhs.Kind(), rhs.Kind())
	}
}

func numName(p Pattern) string {
	endian := "Le"
	if !p.numLittle {
		endian = "Be"
	}
	if p.numFloat {
		return endian + "F" + strconv.Itoa(int(p.numWidth)*8)
	}
	if p.numWidth == 1 {
		if p.numSigned {
			return "I8"
		}
		return "U8"
	}
	sign := "U"
	if p.numSigned {
		sign = "I"
	}
	return endian + sign + strconv.Itoa(int(p.numWidth)*8)
}

// Dump writes an indented, human-readable listing of p's tree to w,
// mirroring the teacher bytecode VM's disassembly listings but for a
// pattern tree instead of compiled instructions. It exists purely for
// debugging and tests; it is not part of the parsing contract.
func (p Pattern) Dump(w io.Writer) (int, error) {
	var buf bytes.Buffer
	dumpNode(&buf, p, 0)
	return w.Write(buf.Bytes())
}

func dumpNode(buf *bytes.Buffer, p Pattern, depth int) {
	indent := strings.Repeat("  ", depth)
	switch p.kind {
	case patExact:
		fmt.Fprintf(buf, "%sExact(% x)\n", indent, p.exact)

	case patNum:
		fmt.Fprintf(buf, "%s%s\n", indent, numName(p))

	case patCStr:
		fmt.Fprintf(buf, "%sCStr\n", indent)

	case patArray:
		fmt.Fprintf(buf, "%sArray(%s)\n", indent, p.countExpr.String())
		dumpNode(buf, *p.inner, depth+1)

	case patAllOf:
		fmt.Fprintf(buf, "%sAllOf\n", indent)
		for _, c := range p.children {
			dumpNode(buf, c, depth+1)
		}

	case patAnyOf:
		fmt.Fprintf(buf, "%sAnyOf\n", indent)
		for _, c := range p.children {
			dumpNode(buf, c, depth+1)
		}

	case patStore:
		fmt.Fprintf(buf, "%sStore(%s)\n", indent, p.key)
		dumpNode(buf, *p.inner, depth+1)

	case patMap:
		fmt.Fprintf(buf, "%sMap\n", indent)
		dumpNode(buf, *p.inner, depth+1)

	case patScoped:
		fmt.Fprintf(buf, "%sScoped\n", indent)
		dumpNode(buf, *p.inner, depth+1)

	case patToMap:
		names := make([]string, len(p.mapKeys))
		for i, nk := range p.mapKeys {
			names[i] = nk.Name
		}
		fmt.Fprintf(buf, "%sToMap(%s)\n", indent, strings.Join(names, ", "))
		dumpNode(buf, *p.inner, depth+1)

	default:
		fmt.Fprintf(buf, "%s<invalid pattern kind %d>\n", indent, p.kind)
	}
}

// String returns the same listing as Dump, as a string.
func (p Pattern) String() string {
	var buf bytes.Buffer
	p.Dump(&buf)
	return buf.String()
}

// String renders e for debugging, primarily so Pattern.Dump can describe
// Array's count expression inline.
func (e Expr) String() string {
	switch e.kind {
	case exprLit:
		return fmt.Sprintf("Lit(%s)", e.lit)
	case exprVar:
		return fmt.Sprintf("Var(%s)", e.key)
	case exprAdd:
		parts := make([]string, len(e.parts))
		for i, p := range e.parts {
			parts[i] = p.String()
		}
		return strings.Join(parts, "+")
	case exprOpaque:
		return "Of(<closure>)"
	default:
		return fmt.Sprintf("<invalid expr kind %d>", e.kind)
	}
}
