// Package tracelog is the structured logging facade the dictionary core
// uses for non-fatal diagnostics, standing in for the original's
// ctx->logTrace(TRACE_SYSTEM, ...) categorized trace channel. It wraps the
// standard library's log/slog: no ecosystem structured-logging library
// appears anywhere in this corpus's dependency graphs, so slog is the
// idiomatic choice here rather than an unjustified reach for zap/zerolog.
package tracelog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Category names the trace channel a line belongs to, mirroring the
// original's TRACE_* bitmask categories.
type Category string

const (
	System Category = "system"
	Redo    Category = "redo"
	Commit  Category = "commit"
)

// Logger is the dictionary core's logging handle. It is safe to share
// across the single goroutine that owns CRS/STI/CO; nothing here is
// called concurrently by this module's own contract (§5), but the
// underlying slog.Logger is goroutine-safe regardless.
type Logger struct {
	base    *slog.Logger
	enabled map[Category]bool
}

// New creates a Logger writing JSON lines to os.Stderr at the given level,
// with the given categories enabled. Categories gate Tracef only: a Tracef
// line under an unlisted category is always suppressed — matching the
// original's opt-in TRACE_SYSTEM bitmask, which defaults off in production
// and is turned on only for diagnosing catalog drift. Warn and Info emit
// under any category, subject only to the level.
func New(level slog.Level, categories ...Category) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	enabled := make(map[Category]bool, len(categories))
	for _, c := range categories {
		enabled[c] = true
	}
	return &Logger{base: slog.New(h), enabled: enabled}
}

// Discard returns a Logger that drops everything; useful in tests that
// don't want trace noise.
func Discard() *Logger {
	return &Logger{base: slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1})), enabled: nil}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Tracef emits a debug-level diagnostic under category, if that category
// is enabled. The format/args pair avoids building the message string at
// all when the category is off.
func (l *Logger) Tracef(cat Category, format string, args ...any) {
	if l == nil || !l.enabled[cat] {
		return
	}
	l.base.Log(context.Background(), slog.LevelDebug, sprintf(format, args...), slog.String("category", string(cat)))
}

// Warn emits a warning-level diagnostic (a tolerated anomaly, e.g. a
// MissingCatalogRow in adaptive-schema mode).
func (l *Logger) Warn(cat Category, msg string, attrs ...any) {
	if l == nil {
		return
	}
	l.base.Warn(msg, append([]any{slog.String("category", string(cat))}, attrs...)...)
}

// Info emits an info-level diagnostic, e.g. "dropped metadata: HR.EMP".
func (l *Logger) Info(cat Category, msg string, attrs ...any) {
	if l == nil {
		return
	}
	l.base.Info(msg, append([]any{slog.String("category", string(cat))}, attrs...)...)
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
