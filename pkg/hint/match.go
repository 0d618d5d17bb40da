package hint

import "reflect"

// Matches reports whether a value satisfies a spec under the given options.
// It is a pure function: no state is consumed, no error is ever returned,
// and matching terminates on any spec tree since specs are finite.
func Matches(v any, s Spec, opts Options) bool {
	switch s.kind {
	case KindAny:
		return true

	case KindNone:
		return isNull(v)

	case KindTupleFixed:
		rv, ok := sequenceValue(v)
		if !ok || rv.Len() != len(s.elems) {
			return false
		}
		for i, elem := range s.elems {
			if !Matches(rv.Index(i).Interface(), elem, opts) {
				return false
			}
		}
		return true

	case KindTupleVariadic, KindSequence:
		rv, ok := sequenceValue(v)
		if !ok {
			return false
		}
		elem := s.elems[0]
		for i := 0; i < rv.Len(); i++ {
			if !Matches(rv.Index(i).Interface(), elem, opts) {
				return false
			}
		}
		return true

	case KindSet:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Map || !isSetValueType(rv.Type().Elem()) {
			return false
		}
		elem := s.elems[0]
		for _, k := range rv.MapKeys() {
			if !Matches(k.Interface(), elem, opts) {
				return false
			}
		}
		return true

	case KindMapping:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Map {
			return false
		}
		key, val := s.elems[0], s.elems[1]
		iter := rv.MapRange()
		for iter.Next() {
			if !Matches(iter.Key().Interface(), key, opts) {
				return false
			}
			if !Matches(iter.Value().Interface(), val, opts) {
				return false
			}
		}
		return true

	case KindTypeOf:
		t, ok := v.(reflect.Type)
		if !ok {
			return false
		}
		if s.typ == nil || s.typ == anyType {
			return true
		}
		if t == s.typ {
			return true
		}
		if s.typ.Kind() == reflect.Interface {
			return t.Implements(s.typ)
		}
		return t.AssignableTo(s.typ)

	case KindAnnotated:
		return Matches(v, s.elems[0], opts)

	case KindLiteral:
		for _, want := range s.literals {
			if literalEqual(v, want) {
				return true
			}
		}
		return false

	case KindUnion:
		for _, member := range s.elems {
			if Matches(v, member, opts) {
				return true
			}
		}
		return false

	case KindTypeVar:
		if len(s.constraints) > 0 {
			for _, c := range s.constraints {
				if Matches(v, c, opts) {
					return true
				}
			}
			return false
		}
		if s.bound != nil {
			return Matches(v, *s.bound, opts)
		}
		return true

	case KindPredicate:
		return s.pred.Check(v)

	default: // KindAtomic
		return matchesAtomic(v, s.typ, opts)
	}
}

var anyType = reflect.TypeOf((*any)(nil)).Elem()

func matchesAtomic(v any, t reflect.Type, opts Options) bool {
	vt := reflect.TypeOf(v)
	if vt == nil {
		// untyped nil belongs to None, not to any atomic type
		return false
	}

	if !opts.StrictBools && vt.Kind() == reflect.Bool && isIntegerType(t) {
		return true
	}

	if vt == t {
		return true
	}
	if !opts.AllowSubclasses {
		return false
	}
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt.AssignableTo(t)
}

// SpecContainsInt reports whether an integer atomic type appears anywhere
// inside a union or tuple spec. It exists only so callers can decide whether
// to mention the bool-as-int caveat in error messages.
func SpecContainsInt(s Spec) bool {
	switch s.kind {
	case KindAtomic:
		return isIntegerType(s.typ)
	case KindUnion, KindTupleFixed, KindTupleVariadic:
		for _, m := range s.elems {
			if SpecContainsInt(m) {
				return true
			}
		}
	}
	return false
}

func isIntegerType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func sequenceValue(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}

func isSetValueType(t reflect.Type) bool {
	return t.Kind() == reflect.Bool || (t.Kind() == reflect.Struct && t.NumField() == 0)
}

// literalEqual compares with plain equality, falling back to deep equality
// when the shared dynamic type is not comparable (a slice or map literal).
func literalEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	if !t.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
