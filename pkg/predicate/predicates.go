package predicate

import (
	"cmp"
	"fmt"
	"slices"
)

// Numeric covers the built-in numeric types accepted by the numeric
// predicates.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Always accepts every value.
func Always[T any]() Predicate[T] {
	return NewWith(func(T) bool { return true }, "always", Static[T]("always true"))
}

// Never rejects every value.
func Never[T any]() Predicate[T] {
	return NewWith(func(T) bool { return false }, "never", Static[T]("always false"))
}

// NotZero accepts values that differ from the type's zero value.
func NotZero[T comparable]() Predicate[T] {
	var zero T
	return NewWith(
		func(x T) bool { return x != zero },
		"not zero",
		Static[T]("expected a non-zero value"),
	)
}

// Equals accepts values equal to want.
func Equals[T comparable](want T) Predicate[T] {
	return NewWith(
		func(x T) bool { return x == want },
		"equals",
		Static[T](fmt.Sprintf("expected == %#v", want)),
	)
}

// Between accepts values within the inclusive range [low, high].
func Between[T cmp.Ordered](low, high T) Predicate[T] {
	return NewWith(
		func(x T) bool { return low <= x && x <= high },
		"between",
		Static[T](fmt.Sprintf("expected %#v <= x <= %#v", low, high)),
	)
}

// BetweenExclusive accepts values within the exclusive range (low, high).
func BetweenExclusive[T cmp.Ordered](low, high T) Predicate[T] {
	return NewWith(
		func(x T) bool { return low < x && x < high },
		"between",
		Static[T](fmt.Sprintf("expected %#v < x < %#v", low, high)),
	)
}

// Positive accepts numbers greater than zero.
func Positive[T Numeric]() Predicate[T] {
	return NewWith(
		func(x T) bool { return x > 0 },
		"positive",
		Static[T]("expected a positive number"),
	)
}

// Negative accepts numbers less than zero.
func Negative[T Numeric]() Predicate[T] {
	return NewWith(
		func(x T) bool { return x < 0 },
		"negative",
		Static[T]("expected a negative number"),
	)
}

// OneOf accepts values contained in the allowed set.
func OneOf[T comparable](allowed ...T) Predicate[T] {
	return NewWith(
		func(x T) bool { return slices.Contains(allowed, x) },
		"one of",
		Static[T](fmt.Sprintf("expected one of %#v", allowed)),
	)
}

// Length accepts slices of exactly the given length.
func Length[E any](size int) Predicate[[]E] {
	return NewWith(
		func(xs []E) bool { return len(xs) == size },
		"length",
		Static[[]E](fmt.Sprintf("expected length %d", size)),
	)
}

// LengthBetween accepts slices whose length is within the inclusive range
// [low, high].
func LengthBetween[E any](low, high int) Predicate[[]E] {
	return NewWith(
		func(xs []E) bool { return low <= len(xs) && len(xs) <= high },
		"length between",
		Static[[]E](fmt.Sprintf("expected %d <= len <= %d", low, high)),
	)
}

// NonEmpty accepts slices with at least one element.
func NonEmpty[E any]() Predicate[[]E] {
	return Length[E](0).Not().
		WithName("non empty").
		WithMsg("expected a non-empty collection")
}

// AllOf folds predicates into a single conjunction. Panics when called with
// no predicates.
func AllOf[T any](preds ...Predicate[T]) Predicate[T] {
	if len(preds) == 0 {
		panic("predicate: AllOf requires at least one predicate")
	}
	final := preds[0]
	for _, p := range preds[1:] {
		final = final.And(p)
	}
	return final
}

// AnyOf folds predicates into a single disjunction. Panics when called with
// no predicates.
func AnyOf[T any](preds ...Predicate[T]) Predicate[T] {
	if len(preds) == 0 {
		panic("predicate: AnyOf requires at least one predicate")
	}
	final := preds[0]
	for _, p := range preds[1:] {
		final = final.Or(p)
	}
	return final
}

// Keys adapts a key predicate to a map: the map is accepted iff every key is.
func Keys[K comparable, V any](inner Predicate[K]) Predicate[map[K]V] {
	return On(
		Quantify(inner, universal, "keys", "for each key: "),
		func(m map[K]V) []K {
			ks := make([]K, 0, len(m))
			for k := range m {
				ks = append(ks, k)
			}
			return ks
		},
	)
}

// MapValues adapts a value predicate to a map: the map is accepted iff every
// value is.
func MapValues[K comparable, V any](inner Predicate[V]) Predicate[map[K]V] {
	return On(
		Quantify(inner, universal, "values", "for each value: "),
		func(m map[K]V) []V {
			vs := make([]V, 0, len(m))
			for _, v := range m {
				vs = append(vs, v)
			}
			return vs
		},
	)
}
