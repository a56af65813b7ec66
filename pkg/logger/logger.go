// Package logger provides logging functionality for the issues-full application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...any) {}

// defaultLogger is a thread-safe logger that writes one line per message.
type defaultLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDefaultLogger creates a new default logger writing to stderr,
// leaving stdout to command results.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stderr)
}

// NewWriterLogger creates a new default logger writing to w.
func NewWriterLogger(w io.Writer) Logger {
	return &defaultLogger{w: w}
}

// Logf writes a formatted message with thread safety.
func (d *defaultLogger) Logf(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(d.w, format+"\n", args...)
}
