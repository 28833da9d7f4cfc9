package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asyncstate/pkg/notify"
)

func TestSignalSubscribeEmit(t *testing.T) {
	t.Parallel()

	t.Run("delivers in registration order", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[int]
		var order []string

		s.Subscribe(func(int) { order = append(order, "first") })
		s.Subscribe(func(int) { order = append(order, "second") })
		s.Subscribe(func(int) { order = append(order, "third") })

		s.Emit(1)
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("emit returns after all handlers ran", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[string]
		seen := 0
		s.Subscribe(func(string) { seen++ })
		s.Subscribe(func(string) { seen++ })

		s.Emit("x")
		assert.Equal(t, 2, seen)
	})

	t.Run("emit with no subscribers is a no-op", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[int]
		s.Emit(42)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("nil handler is ignored", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[int]
		unsub := s.Subscribe(nil)
		assert.Equal(t, 0, s.Len())
		unsub()
	})
}

func TestSignalUnsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("removes only the targeted handler", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[int]
		var got []string

		unsubA := s.Subscribe(func(int) { got = append(got, "a") })
		s.Subscribe(func(int) { got = append(got, "b") })

		unsubA()
		s.Emit(1)

		assert.Equal(t, []string{"b"}, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[int]
		unsub := s.Subscribe(func(int) {})
		require.Equal(t, 1, s.Len())

		unsub()
		unsub()
		assert.Equal(t, 0, s.Len())
	})

	t.Run("handler may unsubscribe itself during emit", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[int]
		calls := 0
		var unsub func()
		unsub = s.Subscribe(func(int) {
			calls++
			unsub()
		})

		s.Emit(1)
		s.Emit(2)
		assert.Equal(t, 1, calls)
	})

	t.Run("handler may subscribe another during emit", func(t *testing.T) {
		t.Parallel()

		var s notify.Signal[int]
		lateCalls := 0
		s.Subscribe(func(int) {
			if s.Len() == 1 {
				s.Subscribe(func(int) { lateCalls++ })
			}
		})

		s.Emit(1)
		assert.Equal(t, 0, lateCalls, "late subscriber must not see the in-flight emit")

		s.Emit(2)
		assert.Equal(t, 1, lateCalls)
	})
}
