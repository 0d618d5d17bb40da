package predicate

import (
	"fmt"
	"iter"
)

// Quantifier folds a lazy sequence of element verdicts into a single
// verdict. size is the number of elements when known, -1 otherwise; it lets
// bounded quantifiers reject an undersized collection without iterating.
type Quantifier func(verdicts iter.Seq[bool], size int) bool

// Quantify generalizes a predicate to a slice: each element is tested
// lazily and the quantifier decides acceptance from the verdict sequence.
// The derived message renders the source predicate's message for the first
// element (the zero value when empty), prefixed. The source predicate joins
// the result's lineage. Like LiftAs and On, the quantifiers are package-level
// functions because a method returning Predicate[[]T] would re-instantiate
// the receiver's generic type and form an instantiation cycle.
func Quantify[T any](p Predicate[T], q Quantifier, label, prefix string) Predicate[[]T] {
	fn := func(xs []T) bool {
		verdicts := func(yield func(bool) bool) {
			for _, x := range xs {
				if !yield(p.fn(x)) {
					return
				}
			}
		}
		return q(verdicts, len(xs))
	}

	msg := Dynamic(func(xs []T) string {
		var sample T
		if len(xs) > 0 {
			sample = xs[0]
		}
		return prefix + p.RenderMsg(sample)
	})

	return LiftAs(p, fn, fmt.Sprintf("%s(%s)", label, p.name), msg)
}

// All accepts a slice iff every element is accepted.
func All[T any](p Predicate[T]) Predicate[[]T] {
	return Quantify(p, universal, "all", "for every element: ")
}

// Any accepts a slice iff at least one element is accepted.
func Any[T any](p Predicate[T]) Predicate[[]T] {
	return Quantify(p, existential, "any", "for at least one element: ")
}

// AtLeast accepts a slice iff at least n elements are accepted. It
// short-circuits true once the count reaches n, and rejects a collection
// shorter than n without iterating. Panics if n is negative.
func AtLeast[T any](p Predicate[T], n int) Predicate[[]T] {
	mustNonNegative("AtLeast", n)

	q := func(verdicts iter.Seq[bool], size int) bool {
		if size >= 0 && size < n {
			return false
		}
		if n == 0 {
			return true
		}
		count := 0
		for ok := range verdicts {
			if ok {
				count++
				if count >= n {
					return true
				}
			}
		}
		return false
	}

	return Quantify(p, q,
		fmt.Sprintf("at least %d", n),
		fmt.Sprintf("for at least %d elements: ", n))
}

// AtMost accepts a slice iff at most n elements are accepted. It
// short-circuits false as soon as the count would exceed n. Panics if n is
// negative.
func AtMost[T any](p Predicate[T], n int) Predicate[[]T] {
	mustNonNegative("AtMost", n)

	q := func(verdicts iter.Seq[bool], _ int) bool {
		count := 0
		for ok := range verdicts {
			if ok {
				count++
				if count > n {
					return false
				}
			}
		}
		return true
	}

	return Quantify(p, q,
		fmt.Sprintf("at most %d", n),
		fmt.Sprintf("for at most %d elements: ", n))
}

// Exactly accepts a slice iff exactly n elements are accepted. It rejects a
// collection shorter than n without iterating and short-circuits false as
// soon as the count would exceed n. Panics if n is negative.
func Exactly[T any](p Predicate[T], n int) Predicate[[]T] {
	mustNonNegative("Exactly", n)

	q := func(verdicts iter.Seq[bool], size int) bool {
		if size >= 0 && size < n {
			return false
		}
		count := 0
		for ok := range verdicts {
			if ok {
				count++
				if count > n {
					return false
				}
			}
		}
		return count == n
	}

	return Quantify(p, q,
		fmt.Sprintf("exactly %d", n),
		fmt.Sprintf("for exactly %d elements: ", n))
}

func universal(verdicts iter.Seq[bool], _ int) bool {
	for ok := range verdicts {
		if !ok {
			return false
		}
	}
	return true
}

func existential(verdicts iter.Seq[bool], _ int) bool {
	for ok := range verdicts {
		if ok {
			return true
		}
	}
	return false
}

func mustNonNegative(op string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("predicate: %s requires a non-negative bound, got %d", op, n))
	}
}
