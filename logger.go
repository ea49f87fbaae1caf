package neodb

import (
	"context"
	"log/slog"
	"os"
)

// Logger is a slog.Logger with helpers that keep attribute names stable
// across loading, querying and exporting.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler. A nil handler logs text at INFO to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger logs JSON lines at level and above to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger logs key=value lines at level and above to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// outcome logs msg at ok on success, or failMsg at ERROR with the error.
func (l *Logger) outcome(ctx context.Context, ok slog.Level, msg, failMsg string, err error, attrs ...any) {
	if err != nil {
		l.Log(ctx, slog.LevelError, failMsg, append(attrs, "error", err)...)
		return
	}
	l.Log(ctx, ok, msg, attrs...)
}

// LogLink reports building the database from linked records.
func (l *Logger) LogLink(ctx context.Context, neos, approaches int, err error) {
	l.outcome(ctx, slog.LevelInfo, "data set linked", "link failed", err,
		"neos", neos, "approaches", approaches)
}

// LogLookup reports a NEO lookup by designation or name.
func (l *Logger) LogLookup(ctx context.Context, by, key string, found bool) {
	l.DebugContext(ctx, "lookup completed", "by", by, "key", key, "found", found)
}

// LogQuery reports the end of a query stream.
func (l *Logger) LogQuery(ctx context.Context, filters string, scanned, matched int, err error) {
	l.outcome(ctx, slog.LevelDebug, "query completed", "query failed", err,
		"filters", filters, "scanned", scanned, "matched", matched)
}

// LogLoad reports parsing one source file.
func (l *Logger) LogLoad(ctx context.Context, source string, loaded, dropped int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed", "source", source, "error", err)
		return
	}
	l.InfoContext(ctx, "source loaded", "source", source, "loaded", loaded, "dropped", dropped)
}

// LogWrite reports an export to dest.
func (l *Logger) LogWrite(ctx context.Context, dest, format string, rows int, err error) {
	l.outcome(ctx, slog.LevelInfo, "results written", "write failed", err,
		"dest", dest, "format", format, "rows", rows)
}
