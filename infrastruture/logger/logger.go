// Package logger implements the leveled logger used across the app:
// stdlib log with a colored component prefix and a level tag per line.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/huyndao/mazegen/config"
)

// Logger writes leveled, prefixed log lines to a single writer.
type Logger struct {
	out    *log.Logger
	prefix string
	color  string
}

// New creates a Logger tagging every line with the given component prefix
// in the given ANSI color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	return &Logger{
		out:    log.New(w, "", log.LstdFlags),
		prefix: prefix,
		color:  color,
	}, nil
}

func (l *Logger) write(level, message string) {
	l.out.Printf("%s[%s] [%s]%s %s", l.color, l.prefix, level, config.LogColorReset, message)
}

// Info logs routine operational messages.
func (l *Logger) Info(message string) {
	l.write("INFO", message)
}

// Warning logs recoverable anomalies.
func (l *Logger) Warning(message string) {
	l.write("WARNING", message)
}

// Error logs failures.
func (l *Logger) Error(message string) {
	l.write("ERROR", message)
}
