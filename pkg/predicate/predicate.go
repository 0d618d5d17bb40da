package predicate

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ancestor is a type-erased view of a predicate kept in a derived predicate's
// lineage. Lineage is used only for diagnostics, never for evaluation.
type ancestor interface {
	ancestorName() string
	renderFor(x any) string
}

// Predicate wraps a boolean test with a short name, a failure message, and
// the lineage of predicates it was derived from.
//
// Predicates are immutable by convention: every combinator and override
// returns a new value and never modifies the receiver. Combinations built
// with And/Or/Not/Xor start with empty lineage (they are peers of their
// operands), while Lift, On and the quantifiers append the source predicate
// to the lineage of the result.
type Predicate[T any] struct {
	fn      func(T) bool
	name    string
	msg     Message[T]
	context []ancestor
}

// New creates a predicate from a test function and a name. The failure
// message defaults to the name; use WithMsg or WithMsgFunc to replace it.
func New[T any](fn func(T) bool, name string) Predicate[T] {
	return Predicate[T]{fn: fn, name: name}
}

// NewWith creates a predicate with an explicit failure message.
func NewWith[T any](fn func(T) bool, name string, msg Message[T]) Predicate[T] {
	return Predicate[T]{fn: fn, name: name, msg: msg}
}

// Check evaluates the predicate against a value.
func (p Predicate[T]) Check(x T) bool {
	return p.fn(x)
}

// Name returns the predicate's name.
func (p Predicate[T]) Name() string {
	return p.name
}

// Msg returns the predicate's failure message.
func (p Predicate[T]) Msg() Message[T] {
	return p.msg
}

// RenderMsg renders the failure message for a given value.
func (p Predicate[T]) RenderMsg(x T) string {
	return p.msg.render(x, p.name)
}

// RenderWithContext renders the failure message followed by the lineage
// chain, keeping at most 6 links.
func (p Predicate[T]) RenderWithContext(x T) string {
	return p.RenderWithContextN(x, 6)
}

// RenderWithContextN renders the failure message followed by an arrow-joined
// chain of the most recent maxChain-1 ancestor names and this predicate's
// own name, e.g. "expected even positive number [via 'positive' -> 'even']".
func (p Predicate[T]) RenderWithContextN(x T, maxChain int) string {
	msg := p.RenderMsg(x)
	if len(p.context) == 0 || maxChain < 1 {
		return msg
	}

	tail := p.context
	if keep := maxChain - 1; len(tail) > keep {
		tail = tail[len(tail)-keep:]
	}

	parts := make([]string, 0, len(tail)+1)
	for _, a := range tail {
		parts = append(parts, "'"+a.ancestorName()+"'")
	}
	parts = append(parts, "'"+p.name+"'")

	return msg + " [via " + strings.Join(parts, " -> ") + "]"
}

// RenderTree renders a multi-line diagnostic: the predicate's own line first,
// then one indented line per ancestor, newest to oldest.
func (p Predicate[T]) RenderTree(x T) string {
	lines := make([]string, 0, len(p.context)+1)
	lines = append(lines, p.name+": "+p.RenderMsg(x))
	for i := len(p.context) - 1; i >= 0; i-- {
		a := p.context[i]
		lines = append(lines, "\tfrom "+a.ancestorName()+": "+a.renderFor(x))
	}
	return strings.Join(lines, "\n")
}

// Explain returns ("", true) if the predicate accepts x, otherwise the
// rendered failure message and false.
func (p Predicate[T]) Explain(x T) (string, bool) {
	if p.fn(x) {
		return "", true
	}
	return p.RenderMsg(x), false
}

// ErrorFactory builds a custom error from the label, the rejected value, and
// the standard failure message.
type ErrorFactory[T any] func(label string, value T, message string) error

// Validate returns x unchanged if the predicate accepts it, otherwise an
// error wrapping ErrViolation with the label "value".
func (p Predicate[T]) Validate(x T) (T, error) {
	return p.ValidateNamed(x, "value")
}

// ValidateNamed is Validate with a caller-supplied label for the value.
func (p Predicate[T]) ValidateNamed(x T, label string) (T, error) {
	if p.fn(x) {
		return x, nil
	}
	return x, fmt.Errorf("%w: %s", ErrViolation, p.failure(x, label))
}

// ValidateWith is Validate with a caller-supplied error factory, letting
// callers shape the returned error without losing the standard message text.
func (p Predicate[T]) ValidateWith(x T, label string, factory ErrorFactory[T]) (T, error) {
	if p.fn(x) {
		return x, nil
	}
	return x, factory(label, x, p.failure(x, label))
}

func (p Predicate[T]) failure(x T, label string) string {
	return fmt.Sprintf("%s: %s (got %#v)", label, p.RenderMsg(x), x)
}

// WithName clones the predicate with a new name, lineage preserved.
func (p Predicate[T]) WithName(name string) Predicate[T] {
	p.name = name
	return p
}

// WithMsg clones the predicate with a new static message, lineage preserved.
func (p Predicate[T]) WithMsg(msg string) Predicate[T] {
	p.msg = Static[T](msg)
	return p
}

// WithMsgFunc clones the predicate with a new dynamic message, lineage
// preserved.
func (p Predicate[T]) WithMsgFunc(fn func(T) string) Predicate[T] {
	p.msg = Dynamic(fn)
	return p
}

// And combines two predicates with a short-circuiting logical AND. The
// result has empty lineage.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return NewWith(
		func(x T) bool { return p.fn(x) && other.fn(x) },
		p.name+" & "+other.name,
		Dynamic(func(x T) string {
			return "(" + p.RenderMsg(x) + ") and (" + other.RenderMsg(x) + ")"
		}),
	)
}

// Or combines two predicates with a short-circuiting logical OR. The result
// has empty lineage.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return NewWith(
		func(x T) bool { return p.fn(x) || other.fn(x) },
		p.name+" | "+other.name,
		Dynamic(func(x T) string {
			return "(" + p.RenderMsg(x) + ") or (" + other.RenderMsg(x) + ")"
		}),
	)
}

// Not negates the predicate. The result has empty lineage.
func (p Predicate[T]) Not() Predicate[T] {
	return NewWith(
		func(x T) bool { return !p.fn(x) },
		"~"+p.name,
		Dynamic(func(x T) string { return "not (" + p.RenderMsg(x) + ")" }),
	)
}

// Xor combines two predicates with an exclusive OR, derived as
// (p | other) & ~(p & other).
func (p Predicate[T]) Xor(other Predicate[T]) Predicate[T] {
	return p.Or(other).And(p.And(other).Not())
}

// Implies builds the logical implication (~p) | other.
func (p Predicate[T]) Implies(other Predicate[T]) Predicate[T] {
	return p.Not().Or(other)
}

// Lift derives a new predicate from this one, appending the receiver to the
// result's lineage. This is the preferred way to build a predicate on top of
// another, since the lineage drives diagnostic chain rendering. An empty
// name copies the receiver's.
func (p Predicate[T]) Lift(fn func(T) bool, name string, msg Message[T]) Predicate[T] {
	if name == "" {
		name = p.name
	}
	d := NewWith(fn, name, msg)
	d.context = appendLineage(p.context, p)
	return d
}

// LiftAs is Lift across value types: the derived predicate tests U while
// keeping the source predicate in its lineage. It is a package-level
// function because Go methods cannot introduce type parameters.
func LiftAs[U, T any](p Predicate[T], fn func(U) bool, name string, msg Message[U]) Predicate[U] {
	if name == "" {
		name = p.name
	}
	d := NewWith(fn, name, msg)
	d.context = appendLineage(p.context, p)
	return d
}

// On adapts a predicate over T into a predicate over Obj by extracting the
// tested value with getter. The message renders against the extracted value.
// The source predicate joins the result's lineage.
func On[Obj, T any](p Predicate[T], getter func(Obj) T) Predicate[Obj] {
	return LiftAs(p,
		func(o Obj) bool { return p.fn(getter(o)) },
		p.name,
		Dynamic(func(o Obj) string { return p.RenderMsg(getter(o)) }),
	)
}

func appendLineage(ctx []ancestor, p ancestor) []ancestor {
	out := make([]ancestor, 0, len(ctx)+1)
	out = append(out, ctx...)
	return append(out, p)
}

func (p Predicate[T]) ancestorName() string {
	return p.name
}

// renderFor renders the message for a type-erased value, falling back to the
// zero value when the value belongs to a derived predicate of another type.
func (p Predicate[T]) renderFor(x any) string {
	if v, ok := x.(T); ok {
		return p.RenderMsg(v)
	}
	var zero T
	return p.RenderMsg(zero)
}

// String surfaces the test function's identifier, the predicate's name, and
// its message (the message function's identifier when dynamic).
func (p Predicate[T]) String() string {
	fn := funcName(reflect.ValueOf(p.fn))

	var m string
	switch p.msg.kind {
	case msgDynamic:
		m = funcName(reflect.ValueOf(p.msg.fn))
	case msgStatic:
		m = fmt.Sprintf("%q", p.msg.static)
	default:
		m = fmt.Sprintf("%q", p.name)
	}

	return fmt.Sprintf("Predicate(fn=%s, name=%s, msg=%s)", fn, p.name, m)
}

func funcName(v reflect.Value) string {
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return v.Type().String()
}
