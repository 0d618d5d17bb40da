package hint

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

// Kind discriminates the closed set of spec variants. Matching dispatches on
// the kind assigned at construction; there is no reflective discovery of
// generic structure at match time.
type Kind uint8

const (
	KindAny Kind = iota
	KindNone
	KindAtomic
	KindUnion
	KindLiteral
	KindTupleFixed
	KindTupleVariadic
	KindSequence
	KindSet
	KindMapping
	KindTypeOf
	KindAnnotated
	KindTypeVar
	KindPredicate
)

// Spec is a structured description of an accepted value shape: a type, a
// union, a literal set, a parameterized container, and so on. Specs form a
// finite tree built by the constructors below; matching is structurally
// recursive over it. Specs are immutable once constructed.
type Spec struct {
	kind        Kind
	typ         reflect.Type // Atomic; TypeOf inner (nil = universal)
	elems       []Spec       // Union members; TupleFixed positions; element/key-value/base specs
	literals    []any        // Literal
	meta        []any        // Annotated metadata, ignored by matching
	name        string       // TypeVar
	constraints []Spec       // TypeVar
	bound       *Spec        // TypeVar
	pred        *predicate.Predicate[any]
}

// Kind returns the spec's variant tag.
func (s Spec) Kind() Kind {
	return s.kind
}

// Any matches every value.
func Any() Spec {
	return Spec{kind: KindAny}
}

// None matches only the null value (untyped nil or a nil pointer, map,
// slice, channel or function).
func None() Spec {
	return Spec{kind: KindNone}
}

// Of builds an atomic spec for the type T. Interface types match any
// implementer (subject to Options.AllowSubclasses).
func Of[T any]() Spec {
	return Type(reflect.TypeOf((*T)(nil)).Elem())
}

// Type builds an atomic spec from a reflect.Type. Panics on nil.
func Type(t reflect.Type) Spec {
	if t == nil {
		panic("hint: Type requires a non-nil reflect.Type")
	}
	return Spec{kind: KindAtomic, typ: t}
}

// Union matches a value iff any member spec matches, evaluated left to
// right with short-circuiting. Panics when called with no members.
func Union(members ...Spec) Spec {
	if len(members) == 0 {
		panic("hint: Union requires at least one member")
	}
	return Spec{kind: KindUnion, elems: members}
}

// OneOfTypes is the tuple-of-types shorthand: a union of atomic specs.
func OneOfTypes(types ...reflect.Type) Spec {
	if len(types) == 0 {
		panic("hint: OneOfTypes requires at least one type")
	}
	members := make([]Spec, len(types))
	for i, t := range types {
		members[i] = Type(t)
	}
	return Union(members...)
}

// Optional matches the base spec or the null value.
func Optional(base Spec) Spec {
	return Union(base, None())
}

// Literal matches values equal to one of the enumerated constants.
// Membership is equality, not recursive matching; non-comparable constants
// (slices, maps) compare deeply. Panics when called with no values.
func Literal(values ...any) Spec {
	if len(values) == 0 {
		panic("hint: Literal requires at least one value")
	}
	return Spec{kind: KindLiteral, literals: values}
}

// Tuple matches a sequence of exactly len(positions) elements, each matching
// its positional spec. Panics when called with no positions.
func Tuple(positions ...Spec) Spec {
	if len(positions) == 0 {
		panic("hint: Tuple requires at least one position")
	}
	return Spec{kind: KindTupleFixed, elems: positions}
}

// TupleOf matches a sequence of any length whose elements all match elem.
func TupleOf(elem Spec) Spec {
	return Spec{kind: KindTupleVariadic, elems: []Spec{elem}}
}

// SliceOf matches a slice or array whose elements all match elem.
func SliceOf(elem Spec) Spec {
	return Spec{kind: KindSequence, elems: []Spec{elem}}
}

// SetOf matches a set (a map with struct{} or bool values) whose members all
// match elem.
func SetOf(elem Spec) Spec {
	return Spec{kind: KindSet, elems: []Spec{elem}}
}

// MapOf matches a map whose keys all match key and values all match value.
func MapOf(key, value Spec) Spec {
	return Spec{kind: KindMapping, elems: []Spec{key, value}}
}

// TypeOf matches reflect.Type values that are t or conform to it (an
// interface t matches implementing types). A nil t is the universal form:
// any reflect.Type matches.
func TypeOf(t reflect.Type) Spec {
	return Spec{kind: KindTypeOf, typ: t}
}

// Annotated carries a base spec plus ignorable metadata; it matches iff the
// base matches.
func Annotated(base Spec, meta ...any) Spec {
	return Spec{kind: KindAnnotated, elems: []Spec{base}, meta: meta}
}

// Var builds a type-variable spec. With constraints it matches iff any
// constraint matches; without, it matches everything.
func Var(name string, constraints ...Spec) Spec {
	return Spec{kind: KindTypeVar, name: name, constraints: constraints}
}

// VarBound builds a type-variable spec with an upper bound: it matches iff
// the bound matches.
func VarBound(name string, bound Spec) Spec {
	return Spec{kind: KindTypeVar, name: name, bound: &bound}
}

// FromPredicate wraps an existing predicate as a spec, so hand-written
// predicates and type specs can be mixed uniformly. AsPredicate unwraps it
// unchanged.
func FromPredicate(p predicate.Predicate[any]) Spec {
	return Spec{kind: KindPredicate, pred: &p}
}

// keyString returns a canonical cache key for the spec. The second result is
// false when the spec cannot be keyed reliably (a literal set holding
// non-comparable values, or an embedded predicate); such specs bypass the
// compile cache.
func (s Spec) keyString() (string, bool) {
	var b strings.Builder
	if !s.writeKey(&b) {
		return "", false
	}
	return b.String(), true
}

func (s Spec) writeKey(b *strings.Builder) bool {
	switch s.kind {
	case KindAny:
		b.WriteString("any")
	case KindNone:
		b.WriteString("none")
	case KindAtomic:
		b.WriteString("t:")
		b.WriteString(typeKey(s.typ))
	case KindUnion:
		b.WriteString("u(")
		for i, m := range s.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			if !m.writeKey(b) {
				return false
			}
		}
		b.WriteByte(')')
	case KindLiteral:
		b.WriteString("l(")
		for i, v := range s.literals {
			if v != nil && !reflect.TypeOf(v).Comparable() {
				return false
			}
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%T=%#v", v, v)
		}
		b.WriteByte(')')
	case KindTupleFixed:
		b.WriteString("tf(")
		for i, m := range s.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			if !m.writeKey(b) {
				return false
			}
		}
		b.WriteByte(')')
	case KindTupleVariadic:
		b.WriteString("tv(")
		if !s.elems[0].writeKey(b) {
			return false
		}
		b.WriteByte(')')
	case KindSequence:
		b.WriteString("sq(")
		if !s.elems[0].writeKey(b) {
			return false
		}
		b.WriteByte(')')
	case KindSet:
		b.WriteString("st(")
		if !s.elems[0].writeKey(b) {
			return false
		}
		b.WriteByte(')')
	case KindMapping:
		b.WriteString("m(")
		if !s.elems[0].writeKey(b) {
			return false
		}
		b.WriteByte(',')
		if !s.elems[1].writeKey(b) {
			return false
		}
		b.WriteByte(')')
	case KindTypeOf:
		b.WriteString("ty:")
		if s.typ != nil {
			b.WriteString(typeKey(s.typ))
		}
	case KindAnnotated:
		// metadata is ignored by matching, so it is ignored by the key too
		b.WriteString("an(")
		if !s.elems[0].writeKey(b) {
			return false
		}
		b.WriteByte(')')
	case KindTypeVar:
		b.WriteString("v:")
		b.WriteString(s.name)
		b.WriteByte('(')
		for i, c := range s.constraints {
			if i > 0 {
				b.WriteByte(',')
			}
			if !c.writeKey(b) {
				return false
			}
		}
		b.WriteByte(')')
		if s.bound != nil {
			b.WriteByte('<')
			if !s.bound.writeKey(b) {
				return false
			}
		}
	case KindPredicate:
		return false
	}
	return true
}

func typeKey(t reflect.Type) string {
	if t.Name() != "" && t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
