package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Level is a zerolog level name. Empty means info.
	Level string
	// HumanReadable switches from JSON lines to zerolog's console writer.
	HumanReadable bool
	// Writer receives log output. Defaults to stderr so stdout stays free
	// for command results.
	Writer io.Writer
}

// Logger is the logging handle passed through authkit. A nil *Logger is
// usable and discards everything, so components can take one optionally.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Component scopes the logger to one part of authkit ("prefs", "appearance",
// "theme", "tui").
func (l *Logger) Component(name string) *Logger {
	return l.WithField("component", name)
}

// WithFields returns a child logger carrying fields on every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{base: ctx.Logger()}
}

// WithField is WithFields for a single pair.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string) {
	l.write(zerolog.DebugLevel, nil, msg)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string) {
	l.write(zerolog.InfoLevel, nil, msg)
}

// Warn logs a degraded but recoverable condition; err may be nil.
func (l *Logger) Warn(err error, msg string) {
	l.write(zerolog.WarnLevel, err, msg)
}

// Error logs a failure; err may be nil.
func (l *Logger) Error(err error, msg string) {
	l.write(zerolog.ErrorLevel, err, msg)
}

func (l *Logger) write(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
