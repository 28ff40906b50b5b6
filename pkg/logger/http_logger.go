package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.uber.org/fx"
)

// HTTPLogger appends one access-log line per request to HTTP_LOG_FILE.
// With no file configured every call is a no-op.
type HTTPLogger struct {
	mu sync.Mutex
	w  io.WriteCloser
}

// NewHTTPLogger opens HTTP_LOG_FILE for appending when it is set.
// An unopenable file is logged and access logging is disabled.
func NewHTTPLogger(log *slog.Logger) *HTTPLogger {
	path := os.Getenv("HTTP_LOG_FILE")
	if path == "" {
		return &HTTPLogger{}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Warn("http access log disabled",
			Scope("logger"),
			slog.String("path", path),
			Error(err),
		)
		return &HTTPLogger{}
	}
	return &HTTPLogger{w: f}
}

// NewHTTPLoggerWriter logs to w.
func NewHTTPLoggerWriter(w io.WriteCloser) *HTTPLogger {
	return &HTTPLogger{w: w}
}

// LogRequest writes a single access-log line.
func (l *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	if l == nil || l.w == nil {
		return
	}

	line := fmt.Sprintf("%s %s %s %s %d %s %q %s\n",
		time.Now().UTC().Format(time.RFC3339),
		ip, method, uri, status, latency, userAgent, requestID,
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

// Close releases the underlying file.
func (l *HTTPLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.w.Close()
	l.w = nil
	return err
}

func registerHTTPLoggerLifecycle(lc fx.Lifecycle, l *HTTPLogger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return l.Close()
		},
	})
}
