// Package logging defines the Sink the facade writes to, together with a
// logrus-backed implementation and in-memory and discarding sinks.
package logging

// Sink defines the severity-leveled write operations of a logging backend.
// Each call receives an already resolved tag and message. Implementations
// must be safe for concurrent use; the facade does no locking around them.
type Sink interface {
	// Verbose writes a verbose-level line
	Verbose(tag, message string)

	// Debug writes a debug-level line
	Debug(tag, message string)

	// Info writes an info-level line
	Info(tag, message string)

	// Warning writes a warning-level line
	Warning(tag, message string)

	// Error writes an error-level line
	Error(tag, message string)
}
