package asyncstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRegistry(t *testing.T) {
	t.Parallel()

	t.Run("add and lookup", func(t *testing.T) {
		t.Parallel()

		r := newStateRegistry[string]()
		require.NoError(t, r.add("a", Funcs[string]{}))

		b, ok := r.lookup("a")
		require.True(t, ok)
		assert.NotNil(t, b)
		assert.True(t, r.contains("a"))
		assert.False(t, r.contains("b"))
	})

	t.Run("duplicate add fails", func(t *testing.T) {
		t.Parallel()

		r := newStateRegistry[string]()
		require.NoError(t, r.add("a", Funcs[string]{}))
		assert.ErrorIs(t, r.add("a", Funcs[string]{}), ErrDuplicateState)
	})

	t.Run("nil behavior fails", func(t *testing.T) {
		t.Parallel()

		r := newStateRegistry[string]()
		assert.ErrorIs(t, r.add("a", nil), ErrNilBehavior)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		r := newStateRegistry[string]()
		require.NoError(t, r.add("a", Funcs[string]{}))
		require.NoError(t, r.remove("a"))
		assert.False(t, r.contains("a"))

		assert.ErrorIs(t, r.remove("a"), ErrUnknownState)
	})

	t.Run("removeAll", func(t *testing.T) {
		t.Parallel()

		r := newStateRegistry[string]()
		require.NoError(t, r.add("a", Funcs[string]{}))
		require.NoError(t, r.add("b", Funcs[string]{}))

		r.removeAll()
		assert.False(t, r.contains("a"))
		assert.False(t, r.contains("b"))
	})
}
