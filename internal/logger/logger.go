package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

const requestIDKey ctxKey = "requestID"

// InitLogger installs the default slog logger writing to stdout, and to a
// session log file under cfg.Dir when set. The returned closer releases the file.
func InitLogger(cfg Config) (io.Closer, error) {
	if cfg.Dir == "" {
		InitLoggerWithWriter(cfg, os.Stdout)
		return nopCloser{}, nil
	}

	f, err := openSessionFile(cfg.Dir, time.Now())
	if err != nil {
		InitLoggerWithWriter(cfg, os.Stdout)
		return nopCloser{}, err
	}
	InitLoggerWithWriter(cfg, io.MultiWriter(os.Stdout, f))
	return f, nil
}

// InitLoggerWithWriter installs the default slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := cfg.BaseAttributes()
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	slog.SetDefault(slog.New(handler).With(args...))
}

// Debug logs at debug level through the default logger
func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

// Info logs at info level through the default logger
func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

// Warn logs at warn level through the default logger
func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

// Error logs at error level through the default logger
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetRequestID returns the request ID from ctx or an empty string
func GetRequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}

func openSessionFile(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	cleanupLogs(dir)

	name := filepath.Join(dir, logFilePrefix+now.Format(logFileTimestamp)+logFileExt)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// cleanupLogs removes the oldest session logs, keeping the keepLogFiles most recent.
func cleanupLogs(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), logFileExt) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keepLogFiles {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keepLogFiles] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			slog.Warn("Failed to delete old log file", "file", name, "error", err)
		}
	}
}
