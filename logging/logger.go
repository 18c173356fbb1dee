package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is a leveled logger scoped to an optional component prefix.
// It is a thin wrapper around a logrus entry so prefixes and extra
// context show up as structured fields.
type Logger struct {
	entry *logrus.Entry
}

// Config holds logger configuration options
type Config struct {
	Level       string // "debug", "info", "warn", "error", "fatal"
	Output      io.Writer
	Prefix      string
	EnableColor bool
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Output:      os.Stdout,
		Prefix:      "",
		EnableColor: true,
	}
}

// New creates a new Logger instance
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	base := logrus.New()
	base.SetOutput(config.Output)

	level, err := logrus.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		ForceColors:     config.EnableColor,
		DisableColors:   !config.EnableColor,
	})

	entry := logrus.NewEntry(base)
	if config.Prefix != "" {
		entry = entry.WithField("component", config.Prefix)
	}

	return &Logger{entry: entry}
}

// NewDefault creates a logger with default configuration
func NewDefault() *Logger {
	return New(DefaultConfig())
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.entry.Logger.SetLevel(parsed)
}

// SetOutput sets the output destination
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// WithPrefix returns a new logger with the specified component prefix.
// Nested prefixes are joined with ":".
func (l *Logger) WithPrefix(prefix string) *Logger {
	if existing, ok := l.entry.Data["component"].(string); ok && existing != "" {
		prefix = existing + ":" + prefix
	}
	return &Logger{entry: l.entry.WithField("component", prefix)}
}

// WithField returns a new logger carrying an extra structured field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

// Debugf logs a formatted message at DEBUG level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// Info logs a message at INFO level
func (l *Logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

// Infof logs a formatted message at INFO level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

// Warn logs a message at WARN level
func (l *Logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

// Warnf logs a formatted message at WARN level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

// Error logs a message at ERROR level
func (l *Logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

// Errorf logs a formatted message at ERROR level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Fatal logs a message at FATAL level and exits the program
func (l *Logger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

// Fatalf logs a formatted message at FATAL level and exits the program
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}
