package hint_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ironclad/pkg/hint"
	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

func TestAsPredicate(t *testing.T) {
	t.Run("wraps the matcher", func(t *testing.T) {
		spec := hint.Union(hint.Of[int](), hint.Of[float64]())
		pred := hint.AsPredicate(spec, hint.DefaultOptions)

		assert.True(t, pred.Check(3))
		assert.True(t, pred.Check(3.5))
		assert.False(t, pred.Check("3"))
	})

	t.Run("name and message carry the spec description", func(t *testing.T) {
		spec := hint.Union(hint.Of[int](), hint.Of[float64]())
		pred := hint.AsPredicate(spec, hint.DefaultOptions)

		assert.Equal(t, "'int or float64'", pred.Name())
		assert.Contains(t, pred.RenderMsg("x"), "int or float64")
	})

	t.Run("existing predicate passes through unchanged", func(t *testing.T) {
		custom := predicate.New(func(v any) bool { return v == "ok" }, "custom")
		pred := hint.AsPredicate(hint.FromPredicate(custom), hint.DefaultOptions)

		assert.Equal(t, "custom", pred.Name())
		assert.True(t, pred.Check("ok"))
		assert.False(t, pred.Check("nope"))
	})

	t.Run("repeated compiles behave identically", func(t *testing.T) {
		spec := hint.SliceOf(hint.Of[int]())
		first := hint.AsPredicate(spec, hint.DefaultOptions)
		second := hint.AsPredicate(spec, hint.DefaultOptions)

		for _, v := range []any{[]int{1, 2}, []any{1, "x"}, "nope", nil} {
			assert.Equal(t, first.Check(v), second.Check(v), "value %#v", v)
		}
	})

	t.Run("options participate in the cache key", func(t *testing.T) {
		spec := hint.Of[int]()
		strict := hint.AsPredicate(spec, hint.DefaultOptions)

		lenient := hint.DefaultOptions
		lenient.StrictBools = false
		loose := hint.AsPredicate(spec, lenient)

		assert.False(t, strict.Check(true))
		assert.True(t, loose.Check(true))
	})

	t.Run("uncacheable spec still compiles correctly", func(t *testing.T) {
		// a literal holding a slice cannot be keyed
		spec := hint.Literal([]int{1, 2}, "fallback")
		pred := hint.AsPredicate(spec, hint.DefaultOptions)

		assert.True(t, pred.Check("fallback"))
		assert.True(t, pred.Check([]int{1, 2}))
		assert.False(t, pred.Check([]int{1, 3}))
		assert.False(t, pred.Check("other"))
	})

	t.Run("concurrent compiles race safely", func(t *testing.T) {
		spec := hint.MapOf(hint.Of[string](), hint.Of[int]())
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pred := hint.AsPredicate(spec, hint.DefaultOptions)
				assert.True(t, pred.Check(map[string]int{"a": 1}))
				assert.False(t, pred.Check(map[int]int{1: 1}))
			}()
		}
		wg.Wait()
	})
}
