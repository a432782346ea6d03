package lloyd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Logger wraps slog.Logger with lloyd-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger

	// progress throttles per-iteration debug lines.
	progress *rate.Sometimes
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return newLogger(slog.New(handler))
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return newLogger(slog.New(handler))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return newLogger(slog.New(handler))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return newLogger(slog.New(handler))
}

func newLogger(l *slog.Logger) *Logger {
	return &Logger{
		Logger:   l,
		progress: newProgress(),
	}
}

// First few iterations of a run always, then at most one line per second.
func newProgress() *rate.Sometimes {
	return &rate.Sometimes{First: 3, Interval: time.Second}
}

// forRun returns a logger whose iteration throttling starts fresh.
func (l *Logger) forRun() *Logger {
	return &Logger{
		Logger:   l.Logger,
		progress: newProgress(),
	}
}

func (l *Logger) with(args ...any) *Logger {
	return &Logger{
		Logger:   l.Logger.With(args...),
		progress: l.progress,
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return l.with("k", k)
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return l.with("dimension", dim)
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return l.with("count", count)
}

// LogIteration logs a completed iteration. Output is throttled per run.
func (l *Logger) LogIteration(ctx context.Context, iteration, changes int, shift float64) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.progress.Do(func() {
		l.DebugContext(ctx, "iteration completed",
			"iteration", iteration,
			"changes", changes,
			"shift", shift,
		)
	})
}

// LogRefine logs the outcome of a refinement run.
func (l *Logger) LogRefine(ctx context.Context, iterations int, converged bool, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "refine failed",
			"iterations", iterations,
			"error", err,
		)
		return
	}
	if !converged {
		l.WarnContext(ctx, "refine stopped at iteration limit",
			"iterations", iterations,
			"duration", duration,
		)
		return
	}
	l.InfoContext(ctx, "refine converged",
		"iterations", iterations,
		"duration", duration,
	)
}
