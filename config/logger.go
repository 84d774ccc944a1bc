package config

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrEmptyLoggerName is returned by NewLogger for a blank name.
var ErrEmptyLoggerName = errors.New("config: logger name is empty")

// Logger writes "[NAME] [LEVEL] message" lines, the name drawn in color.
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

// NewLogger returns a Logger tagged with name and writing to w.
func NewLogger(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyLoggerName
	}
	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[%s]%s %s[INFO]%s %s", l.color, l.name, ColorReset, LogInfoColor, LogColorReset, msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[%s]%s %s[ERROR]%s %s", l.color, l.name, ColorReset, LogErrorColor, LogColorReset, msg)
}

// Info logs through the standard logger with the plain "[NAME] [INFO]" prefix.
func Info(name, format string, args ...any) {
	log.Printf("[%s] [INFO] %s", name, fmt.Sprintf(format, args...))
}
