package dbin

// exprKind identifies which variant of Expr is populated.
type exprKind uint8

const (
	exprLit exprKind = iota
	exprVar
	exprAdd
	exprOpaque
)

// ExprFunc is the signature of an opaque Expr closure. It must be pure
// with respect to the Cursor -- Expr never has access to one -- and should
// treat the Scope as read-only.
type ExprFunc func(*Scope) (Value, error)

// Expr is a small, side-effect-free computation over a Scope, producing a
// Value. It exists so a Pattern -- most commonly Array's repeat count --
// can be parameterized by a value computed earlier in the same parse,
// without giving the pattern tree general access to the Cursor.
type Expr struct {
	kind  exprKind
	lit   Value
	key   Key
	parts []Expr
	fn    ExprFunc
}

// Lit returns an Expr that always evaluates to v.
func Lit(v Value) Expr {
	return Expr{kind: exprLit, lit: v}
}

// Var returns an Expr that looks up key in the current Scope frame.
func Var(key Key) Expr {
	return Expr{kind: exprVar, key: key}
}

// Add returns an Expr that evaluates each of parts, requires every result
// to be an Int, and sums them with 64-bit wraparound. Adjacent Add
// expressions are flattened, matching the combining behavior of (Expr).Add.
func Add(parts ...Expr) Expr {
	flat := make([]Expr, 0, len(parts))
	for _, p := range parts {
		if p.kind == exprAdd {
			flat = append(flat, p.parts...)
		} else {
			flat = append(flat, p)
		}
	}
	return Expr{kind: exprAdd, parts: flat}
}

// Of returns an Expr backed by an opaque closure, for computations that
// don't fit Lit/Var/Add.
func Of(fn ExprFunc) Expr {
	return Expr{kind: exprOpaque, fn: fn}
}

// Add returns an Expr that sums e with other, flattening nested Add
// expressions the same way the Add constructor does.
func (e Expr) Add(other Expr) Expr {
	return Add(e, other)
}

// Eval evaluates e against scope.
func (e Expr) Eval(scope *Scope) (Value, error) {
	switch e.kind {
	case exprLit:
		return e.lit, nil

	case exprVar:
		v, ok := scope.Get(e.key)
		if !ok {
			return Value{}, newError(KindUnbound, 0, "variable %s not found", e.key)
		}
		return v, nil

	case exprAdd:
		var sum int64
		for _, part := range e.parts {
			v, err := part.Eval(scope)
			if err != nil {
				return Value{}, err
			}
			i, ok := v.Int()
			if !ok {
				return Value{}, newError(KindTypeError, 0, "expected Int summand, got %s", v.Kind())
			}
			sum += i
		}
		return Int(sum), nil

	case exprOpaque:
		return e.fn(scope)

	default:
		return Value{}, newError(KindOther, 0, "invalid expression kind %d", e.kind)
	}
}
