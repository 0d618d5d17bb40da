package predicate

import (
	"fmt"
	"strings"
)

// Placeholder is the token substituted with the tested value when rendering
// a static message, e.g. "expected {x} to be even".
const Placeholder = "{x}"

type msgKind uint8

const (
	msgZero msgKind = iota
	msgStatic
	msgDynamic
)

// Message is the failure text of a predicate: either a static template or a
// function of the tested value. The zero value falls back to the predicate's
// name when rendered.
type Message[T any] struct {
	static string
	fn     func(T) string
	kind   msgKind
}

// Static builds a message from a fixed string. An optional Placeholder token
// is replaced with the tested value at render time.
func Static[T any](s string) Message[T] {
	return Message[T]{static: s, kind: msgStatic}
}

// Dynamic builds a message from a function of the tested value.
func Dynamic[T any](fn func(T) string) Message[T] {
	return Message[T]{fn: fn, kind: msgDynamic}
}

// IsZero reports whether the message is unset.
func (m Message[T]) IsZero() bool {
	return m.kind == msgZero
}

// render resolves the message for x. A static template without a placeholder
// is returned verbatim rather than treated as an error, so a diagnostic is
// always produced.
func (m Message[T]) render(x T, fallback string) string {
	switch m.kind {
	case msgDynamic:
		return m.fn(x)
	case msgStatic:
		if !strings.Contains(m.static, Placeholder) {
			return m.static
		}
		return strings.ReplaceAll(m.static, Placeholder, fmt.Sprintf("%v", x))
	default:
		return fallback
	}
}
