// Package logging provides the laser's diagnostics sink. Info and Warning
// output is gated by the "enable_logging" config switch; errors always print.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level orders the severities.
type Level int

const (
	INFO Level = iota
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is safe to use as a nil pointer; a nil Logger drops everything.
type Logger struct {
	out     *log.Logger
	enabled func() bool
}

// New writes to w. enabled is polled on every gated call so a config reload
// takes effect immediately; nil means always enabled.
func New(w io.Writer, enabled func() bool) *Logger {
	return &Logger{
		out:     log.New(w, "[DropLaser] ", log.LstdFlags|log.Lmsgprefix),
		enabled: enabled,
	}
}

// Default logs to stderr.
func Default(enabled func() bool) *Logger {
	return New(os.Stderr, enabled)
}

func (l *Logger) Info(format string, args ...any) {
	l.gated(INFO, format, args...)
}

func (l *Logger) Warning(format string, args ...any) {
	l.gated(WARN, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.write(ERROR, format, args...)
}

func (l *Logger) gated(level Level, format string, args ...any) {
	if l == nil || (l.enabled != nil && !l.enabled()) {
		return
	}
	l.write(level, format, args...)
}

func (l *Logger) write(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	l.out.Printf("%s: %s", level, fmt.Sprintf(format, args...))
}
