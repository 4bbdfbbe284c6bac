package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter adapts logrus.Logger to implement the Sink interface.
// Verbose lines go to logrus' trace level; the tag travels as the FieldTag
// field so formatters render it next to the message.
type LogrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogrusAdapter creates a new LogrusAdapter with the specified log level,
// format and destination.
//
// Parameters:
//   - level: Log level as string ("trace", "debug", "info", "warn", "error")
//   - format: Log format as string ("json" or "text")
//   - out: Destination writer; nil keeps logrus' default (stderr)
//
// Returns a Sink implementation backed by logrus.
func NewLogrusAdapter(level, format string, out io.Writer) *LogrusAdapter {
	logger := logrus.New()
	if out != nil {
		logger.SetOutput(out)
	}

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set log format
	if strings.ToLower(format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return &LogrusAdapter{
		logger: logger,
		entry:  logrus.NewEntry(logger),
	}
}

// NewLogrusAdapterFromLogger creates a LogrusAdapter from an existing logrus.Logger.
func NewLogrusAdapterFromLogger(logger *logrus.Logger) *LogrusAdapter {
	if logger == nil {
		logger = logrus.New()
	}
	return &LogrusAdapter{
		logger: logger,
		entry:  logrus.NewEntry(logger),
	}
}

// Verbose writes a trace-level line
func (l *LogrusAdapter) Verbose(tag, message string) {
	l.entry.WithField(FieldTag, tag).Trace(message)
}

// Debug writes a debug-level line
func (l *LogrusAdapter) Debug(tag, message string) {
	l.entry.WithField(FieldTag, tag).Debug(message)
}

// Info writes an info-level line
func (l *LogrusAdapter) Info(tag, message string) {
	l.entry.WithField(FieldTag, tag).Info(message)
}

// Warning writes a warn-level line
func (l *LogrusAdapter) Warning(tag, message string) {
	l.entry.WithField(FieldTag, tag).Warn(message)
}

// Error writes an error-level line
func (l *LogrusAdapter) Error(tag, message string) {
	l.entry.WithField(FieldTag, tag).Error(message)
}

// Logger exposes the underlying logrus.Logger.
func (l *LogrusAdapter) Logger() *logrus.Logger {
	return l.logger
}
