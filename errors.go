package dbin

import (
	"errors"
	"fmt"
)

// ErrScopeUnderflow is returned by Scope.Pop when only the root frame
// remains. Reachable only through a caller-managed Scope, never through
// Parse -- the only pattern that pops a frame is Scoped, which always
// pairs its pop with a push it performed itself.
var ErrScopeUnderflow = errors.New("dbin: scope stack underflow")

// ErrorKind classifies a ParseError.
type ErrorKind uint8

const (
	// KindOther is an escape hatch for user Map closures and for
	// failures that don't fit any of the other kinds.
	KindOther ErrorKind = iota

	// KindEndOfInput means a read or peek ran past the end of the
	// buffer.
	KindEndOfInput

	// KindMismatch means an Exact/magic check did not match.
	KindMismatch

	// KindTypeError means a combinator received a Value of the wrong
	// shape -- an array length that wasn't an Int, arithmetic over
	// incompatible Values, and so on.
	KindTypeError

	// KindEncoding means CStr found invalid UTF-8.
	KindEncoding

	// KindUnbound means an expression referenced a Key not present in
	// the current Scope frame.
	KindUnbound

	// KindEmpty means AnyOf was evaluated with no children.
	KindEmpty
)

func (k ErrorKind) String() string {
	switch k {
	case KindOther:
		return "Other"
	case KindEndOfInput:
		return "EndOfInput"
	case KindMismatch:
		return "Mismatch"
	case KindTypeError:
		return "TypeError"
	case KindEncoding:
		return "Encoding"
	case KindUnbound:
		return "Unbound"
	case KindEmpty:
		return "Empty"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError is the error type Parse returns for every failure the engine
// itself detects; an error returned by a user Map or Of closure is passed
// through unchanged. It carries the failure's Kind, a human-readable
// Message, and the Cursor position at the point of failure -- included for
// diagnostics only; Parse's own return signature never surfaces a position
// separately. Errors raised by Expr evaluation or by Pattern.Add, which
// have no Cursor, carry Pos 0.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Pos     uint64
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dbin: %s @ %d: %s", e.Kind, e.Pos, e.Message)
}

func newError(kind ErrorKind, pos uint64, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}
