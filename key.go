package dbin

import "fmt"

// Key identifies a binding in a Scope frame. Keys are plain 64-bit
// integers rather than strings so that lookup stays a single map access
// and so that a format definition can enumerate its own small, dense key
// space (an enum-like set of int constants) instead of paying for string
// hashing on every Store/Var.
type Key int64

func (k Key) String() string {
	return fmt.Sprintf("key:%d", int64(k))
}
