package future_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/future"
)

func TestWatch(t *testing.T) {
	t.Parallel()

	t.Run("reports pending until the value arrives", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		f := future.New(func() int {
			<-release
			return 11
		})

		calls := 0
		got := 0
		step := future.Watch(f, func(v int, err error) {
			require.NoError(t, err)
			got = v
			calls++
		})

		assert.False(t, step(), "first step launches the worker and stays pending")
		assert.False(t, step())
		assert.Zero(t, calls)

		close(release)
		<-f.Done()

		require.True(t, step())
		assert.Equal(t, 11, got)

		// Settled steps report done without re-running the callback.
		require.True(t, step())
		assert.Equal(t, 1, calls)
	})

	t.Run("delivers the abort outcome", func(t *testing.T) {
		t.Parallel()

		f := future.Go(func() int { panic("dead") })
		<-f.Done()

		var seen error
		step := future.Watch(f, func(_ int, err error) { seen = err })

		require.True(t, step())
		require.ErrorIs(t, seen, future.ErrAborted)
	})

	t.Run("delivers the closed outcome", func(t *testing.T) {
		t.Parallel()

		f := future.New(func() int { return 1 })
		require.NoError(t, f.Close())

		var seen error
		step := future.Watch(f, func(_ int, err error) { seen = err })

		require.True(t, step())
		require.ErrorIs(t, seen, future.ErrClosed)
	})

	t.Run("nil callback panics", func(t *testing.T) {
		t.Parallel()

		f := future.New(func() int { return 1 })
		assert.Panics(t, func() { future.Watch(f, nil) })
	})
}
