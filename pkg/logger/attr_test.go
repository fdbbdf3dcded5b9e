package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestPanic(t *testing.T) {
	attr := logger.Panic("exploded")
	require.Equal(t, "panic", attr.Key)
	assert.Equal(t, "exploded", attr.Value.Any())

	empty := logger.Panic(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestTrace(t *testing.T) {
	attr := logger.Trace()
	require.Equal(t, "trace", attr.Key)
	assert.Contains(t, attr.Value.String(), "goroutine")
}

func TestComponent(t *testing.T) {
	attr := logger.Component("executor")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "executor", attr.Value.String())
}

func TestEvent(t *testing.T) {
	attr := logger.Event("step_finished")
	require.Equal(t, "event", attr.Key)
	assert.Equal(t, "step_finished", attr.Value.String())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(250 * time.Millisecond)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 250*time.Millisecond, attr.Value.Duration())
}
