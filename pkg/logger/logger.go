// Package logger provides logging functionality for the release tooling.
package logger

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

//go:generate mockgen -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})

	// Boldf logs a formatted message in bold, used for phase announcements.
	Boldf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Boldf does nothing for noop logger.
func (n *noopLogger) Boldf(_ string, _ ...interface{}) {}

var boldStyle = lipgloss.NewStyle().Bold(true)

// defaultLogger is a thread-safe logger that writes to stdout.
type defaultLogger struct {
	mu sync.Mutex
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// Boldf writes a formatted message to stdout in bold with thread safety.
func (d *defaultLogger) Boldf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Println(boldStyle.Render(fmt.Sprintf(format, args...)))
}
