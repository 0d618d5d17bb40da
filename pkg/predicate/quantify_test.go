package predicate_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

func TestPredicate_All(t *testing.T) {
	all := predicate.All(isPositive())

	t.Run("accepts when every element passes", func(t *testing.T) {
		assert.True(t, all.Check([]int{1, 2, 3}))
	})

	t.Run("rejects on a single failure", func(t *testing.T) {
		assert.False(t, all.Check([]int{1, -2, 3}))
	})

	t.Run("accepts the empty slice", func(t *testing.T) {
		assert.True(t, all.Check(nil))
	})

	t.Run("message uses first element and prefix", func(t *testing.T) {
		assert.Equal(t, "for every element: expected a positive number", all.RenderMsg([]int{-1, 2}))
	})

	t.Run("grows lineage", func(t *testing.T) {
		assert.Contains(t, all.RenderWithContext(nil), "[via 'positive' -> 'all(positive)']")
	})
}

func TestPredicate_Any(t *testing.T) {
	anyPos := predicate.Any(isPositive())

	t.Run("accepts when one element passes", func(t *testing.T) {
		assert.True(t, anyPos.Check([]int{-1, -2, 3}))
	})

	t.Run("rejects when none pass", func(t *testing.T) {
		assert.False(t, anyPos.Check([]int{-1, -2}))
	})

	t.Run("rejects the empty slice", func(t *testing.T) {
		assert.False(t, anyPos.Check(nil))
	})

	t.Run("message prefix", func(t *testing.T) {
		assert.Equal(t, "for at least one element: expected a positive number", anyPos.RenderMsg(nil))
	})
}

func TestPredicate_AtLeast(t *testing.T) {
	t.Run("zero bound accepts anything", func(t *testing.T) {
		p := predicate.AtLeast(isPositive(), 0)
		assert.True(t, p.Check(nil))
		assert.True(t, p.Check([]int{-1, -2}))
	})

	t.Run("rejects undersized collections", func(t *testing.T) {
		p := predicate.AtLeast(isPositive(), 5)
		assert.False(t, p.Check([]int{1, 2, 3, 4}))
	})

	t.Run("counts accepted elements", func(t *testing.T) {
		p := predicate.AtLeast(isPositive(), 2)
		assert.True(t, p.Check([]int{-1, 1, 2}))
		assert.False(t, p.Check([]int{-1, -2, 2}))
	})

	t.Run("negative bound panics", func(t *testing.T) {
		assert.Panics(t, func() { predicate.AtLeast(isPositive(), -1) })
	})
}

func TestPredicate_AtMost(t *testing.T) {
	t.Run("accepts up to the bound", func(t *testing.T) {
		p := predicate.AtMost(isPositive(), 2)
		assert.True(t, p.Check(nil))
		assert.True(t, p.Check([]int{1, -1, 2}))
		assert.False(t, p.Check([]int{1, 2, 3}))
	})

	t.Run("zero bound rejects any accepted element", func(t *testing.T) {
		p := predicate.AtMost(isPositive(), 0)
		assert.True(t, p.Check([]int{-1, -2}))
		assert.False(t, p.Check([]int{-1, 1}))
	})

	t.Run("negative bound panics", func(t *testing.T) {
		assert.Panics(t, func() { predicate.AtMost(isPositive(), -3) })
	})
}

func TestPredicate_Exactly(t *testing.T) {
	t.Run("matches the exact count", func(t *testing.T) {
		p := predicate.Exactly(isPositive(), 2)
		assert.True(t, p.Check([]int{0, 0, 1, 1}))
		assert.False(t, p.Check([]int{1, 1, 1, 1}))
		assert.False(t, p.Check([]int{1}))
	})

	t.Run("rejects undersized collections", func(t *testing.T) {
		p := predicate.Exactly(isPositive(), 3)
		assert.False(t, p.Check([]int{1, 1}))
	})

	t.Run("zero count requires no accepted elements", func(t *testing.T) {
		p := predicate.Exactly(isPositive(), 0)
		assert.True(t, p.Check(nil))
		assert.True(t, p.Check([]int{-1, -2}))
		assert.False(t, p.Check([]int{-1, 1}))
	})

	t.Run("negative bound panics", func(t *testing.T) {
		assert.Panics(t, func() { predicate.Exactly(isPositive(), -2) })
	})
}

func TestPredicate_Quantify(t *testing.T) {
	t.Run("custom quantifier receives lazy verdicts", func(t *testing.T) {
		evaluated := 0
		counting := predicate.New(func(n int) bool {
			evaluated++
			return n > 0
		}, "positive")

		stopEarly := predicate.Quantify(counting, func(verdicts iter.Seq[bool], _ int) bool {
			for ok := range verdicts {
				return ok // inspect only the first verdict
			}
			return false
		}, "first", "for the first element: ")

		assert.True(t, stopEarly.Check([]int{1, -1, -1, -1}))
		assert.Equal(t, 1, evaluated)
	})

	t.Run("quantifier knows the collection size", func(t *testing.T) {
		sized := predicate.Quantify(isPositive(), func(_ iter.Seq[bool], size int) bool {
			return size == 3
		}, "sized", "")

		assert.True(t, sized.Check([]int{0, 0, 0}))
		assert.False(t, sized.Check([]int{0}))
	})

	t.Run("label shapes the derived name", func(t *testing.T) {
		assert.Equal(t, "all(positive)", predicate.All(isPositive()).Name())
		assert.Equal(t, "at least 3(positive)", predicate.AtLeast(isPositive(), 3).Name())
		assert.Equal(t, "exactly 2(positive)", predicate.Exactly(isPositive(), 2).Name())
	})
}
