package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ironclad/pkg/dispatch"
	"github.com/dmitrymomot/ironclad/pkg/enforce"
	"github.com/dmitrymomot/ironclad/pkg/hint"
)

func TestMultimethod_Call(t *testing.T) {
	t.Run("selects the overload matching argument types", func(t *testing.T) {
		m := dispatch.New("Describe", hint.DefaultOptions).
			Register([]enforce.Param{
				enforce.Required("n", hint.Of[int]()),
			}, func(args []any) (any, error) {
				return "int", nil
			}).
			Register([]enforce.Param{
				enforce.Required("s", hint.Of[string]()),
			}, func(args []any) (any, error) {
				return "string", nil
			})

		out, err := m.Call(3)
		require.NoError(t, err)
		assert.Equal(t, "int", out)

		out, err = m.Call("x")
		require.NoError(t, err)
		assert.Equal(t, "string", out)
	})

	t.Run("passes bound arguments to the implementation", func(t *testing.T) {
		m := dispatch.New("Add", hint.DefaultOptions).
			Register([]enforce.Param{
				enforce.Required("a", hint.Of[int]()),
				enforce.Required("b", hint.Of[int]()),
			}, func(args []any) (any, error) {
				return args[0].(int) + args[1].(int), nil
			})

		out, err := m.Call(3, 4)
		require.NoError(t, err)
		assert.Equal(t, 7, out)
	})

	t.Run("prefers the most specific overload", func(t *testing.T) {
		m := dispatch.New("Show", hint.DefaultOptions).
			Register([]enforce.Param{
				enforce.Required("v", hint.Any()),
			}, func(args []any) (any, error) {
				return "anything", nil
			}).
			Register([]enforce.Param{
				enforce.Required("v", hint.Of[int]()),
			}, func(args []any) (any, error) {
				return "specific", nil
			})

		out, err := m.Call(3)
		require.NoError(t, err)
		assert.Equal(t, "specific", out)

		out, err = m.Call("fallback")
		require.NoError(t, err)
		assert.Equal(t, "anything", out)
	})

	t.Run("registration order breaks ties", func(t *testing.T) {
		m := dispatch.New("Pick", hint.DefaultOptions).
			Register([]enforce.Param{
				enforce.Required("v", hint.Of[int]()),
			}, func(args []any) (any, error) {
				return "first", nil
			}).
			Register([]enforce.Param{
				enforce.Required("v", hint.Of[int]()),
			}, func(args []any) (any, error) {
				return "second", nil
			})

		out, err := m.Call(1)
		require.NoError(t, err)
		assert.Equal(t, "first", out)
	})

	t.Run("fills omitted trailing parameters from defaults", func(t *testing.T) {
		m := dispatch.New("Greet", hint.DefaultOptions).
			Register([]enforce.Param{
				enforce.Required("name", hint.Of[string]()),
				enforce.WithDefault("greeting", hint.Of[string](), "hello"),
			}, func(args []any) (any, error) {
				return args[1].(string) + ", " + args[0].(string), nil
			})

		out, err := m.Call("world")
		require.NoError(t, err)
		assert.Equal(t, "hello, world", out)
	})

	t.Run("defaults are not applied when disabled", func(t *testing.T) {
		opts := hint.DefaultOptions
		opts.CheckDefaults = false
		m := dispatch.New("Greet", opts).
			Register([]enforce.Param{
				enforce.Required("name", hint.Of[string]()),
				enforce.WithDefault("greeting", hint.Of[string](), "hello"),
			}, func(args []any) (any, error) {
				return nil, nil
			})

		_, err := m.Call("world")
		assert.ErrorIs(t, err, dispatch.ErrNoOverload)
	})

	t.Run("no matching overload lists candidates", func(t *testing.T) {
		m := dispatch.New("Area", hint.DefaultOptions).
			Register([]enforce.Param{
				enforce.Required("r", hint.Of[float64]()),
			}, func(args []any) (any, error) {
				return nil, nil
			}).
			Register([]enforce.Param{
				enforce.Required("w", hint.Of[int]()),
				enforce.Required("h", hint.Of[int]()),
			}, func(args []any) (any, error) {
				return nil, nil
			})

		_, err := m.Call("circle")
		require.Error(t, err)
		assert.ErrorIs(t, err, dispatch.ErrNoOverload)
		assert.Contains(t, err.Error(), "no overload of Area() matches (string)")
		assert.Contains(t, err.Error(), "Area(r: float64)")
		assert.Contains(t, err.Error(), "Area(w: int, h: int)")
	})

	t.Run("duplicate parameter names panic at registration", func(t *testing.T) {
		assert.Panics(t, func() {
			dispatch.New("Bad", hint.DefaultOptions).Register([]enforce.Param{
				enforce.Required("x", hint.Of[int]()),
				enforce.Required("x", hint.Of[int]()),
			}, func(args []any) (any, error) { return nil, nil })
		})
	})
}
