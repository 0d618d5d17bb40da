package hint

import "github.com/dmitrymomot/ironclad/pkg/predicate"

// PredicateCacheCapacity bounds the process-wide cache of compiled
// predicates; least recently used entries are evicted beyond it.
const PredicateCacheCapacity = 2048

var compiled = newPredicateCache(PredicateCacheCapacity)

// AsPredicate compiles a spec into a predicate for the given options. A spec
// built with FromPredicate is returned unchanged, so callers can mix
// hand-written predicates with type specs uniformly. Compiled predicates are
// memoized per (spec, options) pair when the spec can be keyed; specs that
// cannot (literal sets with non-comparable values) are compiled fresh on
// every call.
func AsPredicate(s Spec, opts Options) predicate.Predicate[any] {
	if s.kind == KindPredicate {
		return *s.pred
	}

	key, cacheable := s.keyString()
	if !cacheable {
		return compile(s, opts)
	}

	ck := cacheKey{spec: key, opts: opts}
	if p, ok := compiled.get(ck); ok {
		return p
	}
	p := compile(s, opts)
	compiled.put(ck, p)
	return p
}

func compile(s Spec, opts Options) predicate.Predicate[any] {
	return predicate.New(
		func(v any) bool { return Matches(v, s, opts) },
		"'"+s.String()+"'",
	)
}
