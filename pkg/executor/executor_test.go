package executor_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/config"
	"github.com/dmitrymomot/asynckit/pkg/executor"
	"github.com/dmitrymomot/asynckit/pkg/future"
)

func TestStepsRunToCompletion(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := executor.New(executor.WithTickInterval(time.Millisecond))

	completedBefore := metrics.GetOrCreateCounter("executor_step_completed").Get()

	var finished atomic.Int32
	for range 5 {
		remaining := 3
		require.NoError(t, exec.Add("countdown", func() bool {
			remaining--
			if remaining == 0 {
				finished.Add(1)
				return true
			}
			return false
		}))
	}
	require.Equal(t, 5, exec.Len())

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	require.Eventually(t, func() bool {
		return exec.Len() == 0
	}, time.Second, 5*time.Millisecond, "all steps should finish")
	assert.Equal(t, int32(5), finished.Load())

	cancel()
	require.NoError(t, <-done)

	completedAfter := metrics.GetOrCreateCounter("executor_step_completed").Get()
	assert.GreaterOrEqual(t, completedAfter, completedBefore+5)
}

func TestWatchIntegration(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := executor.New(executor.WithTickInterval(time.Millisecond))

	f := future.New(func() int {
		time.Sleep(30 * time.Millisecond)
		return 42
	})

	type outcome struct {
		v   int
		err error
	}
	results := make(chan outcome, 1)
	require.NoError(t, exec.Add("report", future.Watch(f, func(v int, err error) {
		results <- outcome{v: v, err: err}
	})))

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	select {
	case got := <-results:
		require.NoError(t, got.err)
		assert.Equal(t, 42, got.v)
	case <-time.After(time.Second):
		t.Fatal("watch step never delivered the result")
	}

	require.Eventually(t, func() bool {
		return exec.Len() == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestPanickedStepIsIsolated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	exec := executor.New(
		executor.WithTickInterval(time.Millisecond),
		executor.WithLogger(logger),
	)

	panickedBefore := metrics.GetOrCreateCounter("executor_step_panicked").Get()

	require.NoError(t, exec.Add("bomb", func() bool {
		panic("bomb went off")
	}))

	healthyTicks := 0
	healthyDone := make(chan struct{})
	require.NoError(t, exec.Add("healthy", func() bool {
		healthyTicks++
		if healthyTicks == 3 {
			close(healthyDone)
			return true
		}
		return false
	}))

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	select {
	case <-healthyDone:
	case <-time.After(time.Second):
		t.Fatal("healthy step did not survive the panicking step")
	}

	require.Eventually(t, func() bool {
		return exec.Len() == 0
	}, time.Second, 5*time.Millisecond, "the panicking step should be retired")

	cancel()
	require.NoError(t, <-done)

	logs := buf.String()
	assert.Contains(t, logs, "step panicked")
	assert.Contains(t, logs, "bomb went off")

	panickedAfter := metrics.GetOrCreateCounter("executor_step_panicked").Get()
	assert.GreaterOrEqual(t, panickedAfter, panickedBefore+1)
}

func TestAddAfterShutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	exec := executor.New(executor.WithTickInterval(time.Millisecond))

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)

	assert.ErrorIs(t, exec.Add("late", func() bool { return true }), executor.ErrClosed)
	assert.ErrorIs(t, exec.Run(context.Background()), executor.ErrClosed)
}

func TestRunTwiceFails(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := executor.New(executor.WithTickInterval(time.Millisecond))

	started := make(chan struct{})
	require.NoError(t, exec.Add("probe", func() bool {
		close(started)
		return true
	}))

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	// The probe step proves the loop is live before the second Run call.
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("loop never started polling")
	}

	assert.ErrorIs(t, exec.Run(context.Background()), executor.ErrAlreadyRunning)

	cancel()
	require.NoError(t, <-done)
}

func TestCapacityLimit(t *testing.T) {
	t.Parallel()

	exec := executor.New(executor.WithMaxTasks(2))

	require.NoError(t, exec.Add("first", func() bool { return true }))
	require.NoError(t, exec.Add("second", func() bool { return true }))
	assert.ErrorIs(t, exec.Add("third", func() bool { return true }), executor.ErrCapacity)
	assert.Equal(t, 2, exec.Len())
}

func TestCapacityFreesAfterCompletion(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := executor.New(
		executor.WithTickInterval(time.Millisecond),
		executor.WithMaxTasks(1),
	)

	require.NoError(t, exec.Add("only", func() bool { return true }))
	assert.ErrorIs(t, exec.Add("blocked", func() bool { return true }), executor.ErrCapacity)

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	require.Eventually(t, func() bool {
		return exec.Len() == 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, exec.Add("after", func() bool { return true }),
		"capacity should free up once a step finishes")

	cancel()
	require.NoError(t, <-done)
}

func TestAddNilStep(t *testing.T) {
	t.Parallel()

	exec := executor.New()
	assert.ErrorIs(t, exec.Add("nil", nil), executor.ErrNilStep)
}

func TestStepsCanAddSteps(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := executor.New(executor.WithTickInterval(time.Millisecond))

	secondRan := make(chan struct{})
	addErr := make(chan error, 1)
	require.NoError(t, exec.Add("first", func() bool {
		addErr <- exec.Add("second", func() bool {
			close(secondRan)
			return true
		})
		return true
	}))

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	require.NoError(t, <-addErr, "a running step must be able to stage more steps")

	select {
	case <-secondRan:
	case <-time.After(time.Second):
		t.Fatal("step added from inside the loop never ran")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestShutdownDrainsRemainingSteps(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	exec := executor.New(executor.WithTickInterval(time.Millisecond))

	var polls atomic.Int32
	require.NoError(t, exec.Add("slow", func() bool {
		return polls.Add(1) >= 10
	}))

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	// Cancel immediately; the drain must still run the step to completion.
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("executor did not stop")
	}

	assert.GreaterOrEqual(t, polls.Load(), int32(10), "drain should keep polling until the step finishes")
	assert.Equal(t, 0, exec.Len())
}

func TestShutdownAbandonsStuckSteps(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	exec := executor.New(
		executor.WithTickInterval(time.Millisecond),
		executor.WithShutdownTimeout(50*time.Millisecond),
		executor.WithLogger(logger),
	)

	require.NoError(t, exec.Add("stuck", func() bool { return false }))

	done := make(chan error, 1)
	go func() { done <- exec.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("executor did not respect the shutdown timeout")
	}

	assert.Equal(t, 1, exec.Len(), "the stuck step stays live; it was abandoned, not finished")
	assert.Contains(t, buf.String(), "executor stopped with unfinished steps")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	exec := executor.NewFromConfig(executor.Config{MaxTasks: 1})

	require.NoError(t, exec.Add("one", func() bool { return true }))
	assert.ErrorIs(t, exec.Add("two", func() bool { return true }), executor.ErrCapacity)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("EXECUTOR_TICK_INTERVAL", "2ms")
	t.Setenv("EXECUTOR_SHUTDOWN_TIMEOUT", "1s")
	t.Setenv("EXECUTOR_MAX_TASKS", "3")

	cfg, err := config.Load[executor.Config]()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 3, cfg.MaxTasks)

	// Explicit options still win over config values.
	exec := executor.NewFromConfig(cfg, executor.WithMaxTasks(1))
	require.NoError(t, exec.Add("one", func() bool { return true }))
	assert.ErrorIs(t, exec.Add("two", func() bool { return true }), executor.ErrCapacity)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"tick", func() { executor.WithTickInterval(0) }},
		{"shutdown", func() { executor.WithShutdownTimeout(-time.Second) }},
		{"max tasks", func() { executor.WithMaxTasks(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				assert.NotNil(t, recover(), "expected panic")
			}()
			tt.fn()
		})
	}

	t.Run("logger nil allowed", func(t *testing.T) {
		t.Parallel()
		defer func() { _ = recover() }()
		executor.WithLogger(nil)
	})
}
