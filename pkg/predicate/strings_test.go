package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/ironclad/pkg/predicate"
)

func TestRegex(t *testing.T) {
	t.Run("matches in full", func(t *testing.T) {
		p := predicate.Regex(`[a-z]+-\d+`)
		assert.True(t, p.Check("order-42"))
		assert.False(t, p.Check("order-42-extra"))
		assert.False(t, p.Check("ORDER-42"))
	})

	t.Run("invalid pattern panics", func(t *testing.T) {
		assert.Panics(t, func() { predicate.Regex(`(`) })
	})
}

func TestEqualsFold(t *testing.T) {
	t.Run("ignores case", func(t *testing.T) {
		p := predicate.EqualsFold("Straße")
		assert.True(t, p.Check("straße"))
		assert.True(t, p.Check("STRASSE"))
		assert.False(t, p.Check("strasse!"))
	})
}

func TestValidUUID(t *testing.T) {
	p := predicate.ValidUUID()

	t.Run("accepts canonical uuids", func(t *testing.T) {
		assert.True(t, p.Check("550e8400-e29b-41d4-a716-446655440000"))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		assert.False(t, p.Check(""))
		assert.False(t, p.Check("not-a-uuid"))
		assert.False(t, p.Check("550e8400e29b41d4a716446655440000"))
		assert.False(t, p.Check("550e8400-e29b-41d4-a716-44665544000z"))
	})
}
