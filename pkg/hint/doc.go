// Package hint implements a structural matcher that decides whether a
// runtime value satisfies a type specification, plus a compiler that turns
// specifications into cached predicates.
//
// A Spec is a closed tagged union over the supported shapes: atomic types,
// unions, literal sets, fixed and variadic tuples, sequences, sets,
// mappings, type-of specs, annotated specs, type variables, and the
// wildcard. Construction validates the tree up front, so Matches never
// encounters an unknown construct.
//
// # Architecture
//
// Matches is a pure, total, structurally recursive function over the spec
// tree; it holds no state and never returns an error. AsPredicate wraps a
// spec/options pair into a predicate.Predicate and memoizes the result in a
// process-wide LRU cache bounded by PredicateCacheCapacity. The cache is
// mutex-guarded and safe for concurrent use; a race that compiles the same
// entry twice is harmless because compiled predicates for equal inputs are
// interchangeable.
//
// # Usage
//
//	numeric := hint.Union(hint.Of[int](), hint.Of[float64]())
//
//	hint.Matches(3, numeric, hint.DefaultOptions)    // true
//	hint.Matches("3", numeric, hint.DefaultOptions)  // false
//
//	pred := hint.AsPredicate(numeric, hint.DefaultOptions)
//	pred.Check(3.5) // true
//
// # Options
//
// Options controls subclass acceptance (interface conformance and
// assignability versus exact type identity), default-value checking in the
// argument layer, and the strict-bools policy that keeps booleans from
// satisfying integer specs.
package hint
