package hint_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ironclad/pkg/hint"
	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

func TestSpec_String(t *testing.T) {
	cases := []struct {
		name string
		spec hint.Spec
		want string
	}{
		{"any", hint.Any(), "any"},
		{"none", hint.None(), "nil"},
		{"atomic builtin", hint.Of[int](), "int"},
		{"atomic named", hint.Of[dog](), "hint_test.dog"},
		{"union", hint.Union(hint.Of[int](), hint.Of[float64]()), "int or float64"},
		{"union deduplicates", hint.Union(hint.Of[int](), hint.Of[int]()), "int"},
		{"optional", hint.Optional(hint.Of[string]()), "string or nil"},
		{"literal", hint.Literal(1, "two"), `1 or "two"`},
		{"fixed tuple", hint.Tuple(hint.Of[int](), hint.Of[string]()), "tuple[int, string]"},
		{"variadic tuple", hint.TupleOf(hint.Of[int]()), "tuple[int, ...]"},
		{"sequence", hint.SliceOf(hint.Of[int]()), "[]int"},
		{"set", hint.SetOf(hint.Of[string]()), "set[string]"},
		{"mapping", hint.MapOf(hint.Of[int](), hint.Of[string]()), "map[int]string"},
		{"type of", hint.TypeOf(reflect.TypeOf(0)), "type[int]"},
		{"type of universal", hint.TypeOf(nil), "type[any]"},
		{"annotated hides metadata", hint.Annotated(hint.Of[int](), "unit"), "int"},
		{"free type variable", hint.Var("T"), "T"},
		{"constrained type variable", hint.Var("T", hint.Of[int](), hint.Of[string]()), "int or string"},
		{"bounded type variable", hint.VarBound("A", hint.Of[animal]()), "hint_test.animal"},
		{"predicate", hint.FromPredicate(predicate.New(func(any) bool { return true }, "custom")), "custom"},
		{"nested", hint.SliceOf(hint.MapOf(hint.Of[string](), hint.Union(hint.Of[int](), hint.None()))), "[]map[string]int or nil"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.spec.String())
		})
	}
}
