// Package predicate provides named, composable boolean tests over values
// with lineage-aware failure messages.
//
// A Predicate wraps a test function together with a short name and a failure
// message (static template or function of the tested value). Predicates
// combine with And, Or, Not, Xor and Implies, derive via Lift and On, and
// generalize to collections through the quantifiers All, Any, AtLeast,
// AtMost and Exactly.
//
// # Architecture
//
// Predicates are immutable by convention: every operation returns a new
// value. Derivations built with Lift, On or a quantifier record the source
// predicate in the result's lineage, which RenderWithContext and RenderTree
// turn into diagnostic chains. Plain combinations (And, Or, Not, Xor) start
// with empty lineage since they are peers of their operands, not
// derivations. There is no hidden global state; the package is stateless
// and goroutine-safe.
//
// # Usage
//
//	positive := predicate.Positive[int]()
//	even := positive.Lift(
//		func(n int) bool { return n > 0 && n%2 == 0 },
//		"even positive",
//		predicate.Static[int]("expected an even positive number"),
//	)
//
//	if _, err := even.Validate(7); err != nil {
//		// constraint violated: value: expected an even positive number (got 7)
//	}
//
//	allEven := predicate.All(even)
//	allEven.Check([]int{2, 4, 6}) // true
//
// # Error Handling
//
// A predicate rejecting a value is a boolean result, not an error. Validate
// is the single escalation point: it wraps ErrViolation by default and
// accepts an ErrorFactory for callers that need a custom error shape.
// Invalid quantifier bounds (negative n) and empty AllOf/AnyOf argument
// lists are programmer misuse and panic at construction time.
package predicate
