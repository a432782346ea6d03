package lloyd

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func TestLogger_Refine(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)
	data, _ := interleavedSample()

	_, err := New(WithLogger(logger)).Refine(context.Background(), data, 3, 100)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"iteration completed"`)
	assert.Contains(t, out, `"msg":"refine converged"`)
	assert.Contains(t, out, `"k":3`)
	assert.Contains(t, out, `"count":9`)
	assert.Contains(t, out, `"dimension":2`)
}

func TestLogger_IterationLimitWarns(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)
	data, _ := interleavedSample()

	_, err := New(WithLogger(logger)).Refine(context.Background(), data, 3, 1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, "refine stopped at iteration limit")
	assert.NotContains(t, out, "iteration completed")
}

func TestLogger_Error(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelInfo)

	logger.LogRefine(context.Background(), 0, false, 0, errors.New("boom"))

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogger_IterationThrottled(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)

	for i := range 10 {
		logger.LogIteration(context.Background(), i+1, 0, 0)
	}

	assert.Equal(t, 3, strings.Count(buf.String(), "iteration completed"))
}

func TestLogger_IterationThrottledPerRun(t *testing.T) {
	logger, buf := newBufferLogger(slog.LevelDebug)
	data, _ := interleavedSample()
	c := New(WithLogger(logger))

	for range 3 {
		res, err := c.Refine(context.Background(), data, 3, 2)
		require.NoError(t, err)
		require.Equal(t, 2, res.Iterations)
	}

	assert.Equal(t, 6, strings.Count(buf.String(), "iteration completed"))
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))

	c := New(WithLogger(nil))
	assert.NotNil(t, c.opts.logger)
}

func TestWithLogLevel(t *testing.T) {
	c := New(WithLogLevel(slog.LevelWarn))
	assert.True(t, c.opts.logger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, c.opts.logger.Enabled(context.Background(), slog.LevelInfo))
}
