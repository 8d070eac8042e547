package dbin

import (
	"unicode/utf8"

	"github.com/math4tots-misc/dbin/bcodec"
)

// Parse runs p against buf from position 0 and returns the Value it
// produces. It does not require p to consume the entire buffer --
// trailing bytes are simply left unread.
func Parse(p Pattern, buf []byte) (Value, error) {
	c := NewCursor(buf)
	s := NewScope()
	return eval(p, c, s)
}

func eval(p Pattern, c *Cursor, s *Scope) (Value, error) {
	switch p.kind {
	case patExact:
		return evalExact(p, c)

	case patNum:
		return evalNum(p, c)

	case patCStr:
		return evalCStr(c)

	case patArray:
		return evalArray(p, c, s)

	case patAllOf:
		return evalAllOf(p, c, s)

	case patAnyOf:
		return evalAnyOf(p, c, s)

	case patStore:
		v, err := eval(*p.inner, c, s)
		if err != nil {
			return Value{}, err
		}
		s.Set(p.key, v)
		return v, nil

	case patMap:
		v, err := eval(*p.inner, c, s)
		if err != nil {
			return Value{}, err
		}
		return p.mapFn(s, v)

	case patScoped:
		return evalScoped(p, c, s)

	case patToMap:
		return evalToMap(p, c, s)

	default:
		return Value{}, newError(KindOther, c.Pos(), "invalid pattern kind %d", p.kind)
	}
}

func evalExact(p Pattern, c *Cursor) (Value, error) {
	start := c.Save()
	got, err := c.Read(uint64(len(p.exact)))
	if err != nil {
		return Value{}, err
	}
	for i := range p.exact {
		if got[i] != p.exact[i] {
			c.Restore(start)
			return Value{}, newError(KindMismatch, start, "expected % x, got % x", p.exact, got)
		}
	}
	return Bytes(append([]byte(nil), got...)), nil
}

func evalNum(p Pattern, c *Cursor) (Value, error) {
	b, err := c.Read(uint64(p.numWidth))
	if err != nil {
		return Value{}, err
	}
	endian := bcodec.Little
	if !p.numLittle {
		endian = bcodec.Big
	}
	switch {
	case p.numFloat && p.numWidth == 4:
		return Float(float64(bcodec.DecodeFloat32(endian, b))), nil
	case p.numFloat && p.numWidth == 8:
		return Float(bcodec.DecodeFloat64(endian, b)), nil
	case p.numSigned:
		return Int(bcodec.DecodeSint(endian, b)), nil
	default:
		return Int(bcodec.DecodeUint(endian, b)), nil
	}
}

func evalCStr(c *Cursor) (Value, error) {
	start := c.Save()
	var raw []byte
	for {
		b, err := c.Read(1)
		if err != nil {
			c.Restore(start)
			return Value{}, newError(KindEndOfInput, start, "CStr: no terminating NUL before end of input")
		}
		if b[0] == 0 {
			break
		}
		raw = append(raw, b[0])
	}
	if !utf8.Valid(raw) {
		c.Restore(start)
		return Value{}, newError(KindEncoding, start, "CStr: invalid UTF-8")
	}
	return String(string(raw)), nil
}

func evalArray(p Pattern, c *Cursor, s *Scope) (Value, error) {
	countVal, err := p.countExpr.Eval(s)
	if err != nil {
		return Value{}, err
	}
	count, ok := countVal.Int()
	if !ok {
		return Value{}, newError(KindTypeError, c.Pos(), "Array count expression produced %s, not Int", countVal.Kind())
	}
	if count < 0 {
		return Value{}, newError(KindTypeError, c.Pos(), "Array count expression produced negative count %d", count)
	}
	items := make([]Value, 0, count)
	for i := int64(0); i < count; i++ {
		v, err := eval(*p.inner, c, s)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return Seq(items), nil
}

func evalAllOf(p Pattern, c *Cursor, s *Scope) (Value, error) {
	items := make([]Value, 0, len(p.children))
	for _, child := range p.children {
		v, err := eval(child, c, s)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	return Seq(items), nil
}

// evalAnyOf tries each child at the same starting position, restoring the
// Cursor (but never the Scope -- Scope writes made by a failing branch
// stay in effect) between attempts, and commits to the first success.
func evalAnyOf(p Pattern, c *Cursor, s *Scope) (Value, error) {
	if len(p.children) == 0 {
		return Value{}, newError(KindEmpty, c.Pos(), "AnyOf has no children")
	}
	start := c.Save()
	var lastErr error
	for _, child := range p.children {
		c.Restore(start)
		v, err := eval(child, c, s)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return Value{}, lastErr
}

func evalScoped(p Pattern, c *Cursor, s *Scope) (Value, error) {
	s.Push()
	defer s.Pop()
	return eval(*p.inner, c, s)
}

func evalToMap(p Pattern, c *Cursor, s *Scope) (Value, error) {
	if _, err := eval(*p.inner, c, s); err != nil {
		return Value{}, err
	}
	pairs := make([]Value, 0, len(p.mapKeys))
	for _, nk := range p.mapKeys {
		v, ok := s.Get(nk.Key)
		if !ok {
			return Value{}, newError(KindUnbound, c.Pos(), "ToMap: key %s not bound", nk.Key)
		}
		pairs = append(pairs, Seq([]Value{String(nk.Name), v}))
	}
	return Seq(pairs), nil
}
