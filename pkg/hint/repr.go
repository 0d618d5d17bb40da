package hint

import (
	"fmt"
	"strings"
)

// String renders the spec as a human-facing type description, e.g.
// "int or float64", "tuple[int, string]", "map[int]string", "type[error]".
func (s Spec) String() string {
	switch s.kind {
	case KindAny:
		return "any"

	case KindNone:
		return "nil"

	case KindAtomic:
		return s.typ.String()

	case KindUnion:
		parts := make([]string, len(s.elems))
		for i, m := range s.elems {
			parts[i] = m.String()
		}
		return joinOr(parts)

	case KindLiteral:
		parts := make([]string, len(s.literals))
		for i, v := range s.literals {
			parts[i] = fmt.Sprintf("%#v", v)
		}
		return joinOr(parts)

	case KindTupleFixed:
		parts := make([]string, len(s.elems))
		for i, m := range s.elems {
			parts[i] = m.String()
		}
		return "tuple[" + strings.Join(parts, ", ") + "]"

	case KindTupleVariadic:
		return "tuple[" + s.elems[0].String() + ", ...]"

	case KindSequence:
		return "[]" + s.elems[0].String()

	case KindSet:
		return "set[" + s.elems[0].String() + "]"

	case KindMapping:
		return "map[" + s.elems[0].String() + "]" + s.elems[1].String()

	case KindTypeOf:
		if s.typ == nil {
			return "type[any]"
		}
		return "type[" + s.typ.String() + "]"

	case KindAnnotated:
		return s.elems[0].String()

	case KindTypeVar:
		if len(s.constraints) > 0 {
			parts := make([]string, len(s.constraints))
			for i, c := range s.constraints {
				parts[i] = c.String()
			}
			return joinOr(parts)
		}
		if s.bound != nil {
			return s.bound.String()
		}
		return s.name

	case KindPredicate:
		return s.pred.Name()
	}

	return "unknown"
}

// joinOr joins with " or ", dropping duplicates while preserving the first
// occurrence order.
func joinOr(parts []string) string {
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return strings.Join(out, " or ")
}
