// Package dbin implements a declarative engine for describing and parsing
// binary data formats.
//
// A user composes a tree of Patterns -- primitive numeric readers, sequence
// and alternation combinators, variable-length arrays, and contextual
// bindings -- and executes that tree against a byte buffer with Parse to
// obtain a structured Value. A symmetric Renderer encodes simple numeric
// trees back into bytes, to make it cheap to build round-trip tests.
//
// THE CORE is the pattern engine: the Pattern/Expr data model, the
// evaluator that walks a Pattern against a positional Cursor while
// maintaining a scoped variable environment (Scope), and the alternation
// backtracking discipline. Numeric rendering and sample format definitions
// (see the samples subpackages) are peripheral conveniences layered on top
// of that core.
//
// Evaluation model
//
// Parse creates a fresh Cursor (position 0 over the caller's buffer) and a
// fresh Scope (one empty frame), then walks the Pattern tree:
//
//	Exact, U8/I8, LeUn/BeUn, LeIn/BeIn, LeF32/BeF32/LeF64/BeF64, CStr
//	    consume bytes and produce a leaf Value.
//	Array evaluates an Expr against the current Scope to find a repeat
//	    count, then repeats its child pattern that many times.
//	AllOf evaluates its children left to right, at the same cursor
//	    position each leaves the last at; Store bindings made by an
//	    earlier child are visible to later children and their
//	    descendants.
//	AnyOf tries each child in turn at the same starting position,
//	    restoring the cursor (but NOT the Scope -- see Scoped) after
//	    every failing attempt, and commits to the first success.
//	Store and Map never themselves consume bytes; they run their child
//	    pattern and then either bind its Value into the current Scope
//	    frame (Store) or transform it (Map).
//	Scoped pushes a new Scope frame before its child and pops it again
//	    on every exit path, success or failure, giving lexical isolation
//	    to a subtree's Store bindings.
//
// On failure, the evaluator leaves the Cursor in an undefined position
// relative to the pattern that failed; AnyOf is solely responsible for
// restoring it before trying the next alternative, which keeps every other
// combinator free of save/restore bookkeeping it does not need.
package dbin
