package logging

import "sync"

// Severity labels recorded by MockSink.
const (
	LevelVerbose = "VERBOSE"
	LevelDebug   = "DEBUG"
	LevelInfo    = "INFO"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// MockSink is a mock implementation of the Sink interface for testing.
// It captures written lines for verification in tests.
type MockSink struct {
	mu      sync.Mutex
	Entries []LogEntry
}

// LogEntry represents a single line captured by MockSink.
type LogEntry struct {
	Level   string
	Tag     string
	Message string
}

func (m *MockSink) record(level, tag, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Tag:     tag,
		Message: message,
	})
}

// Verbose records a verbose-level line.
func (m *MockSink) Verbose(tag, message string) { m.record(LevelVerbose, tag, message) }

// Debug records a debug-level line.
func (m *MockSink) Debug(tag, message string) { m.record(LevelDebug, tag, message) }

// Info records an info-level line.
func (m *MockSink) Info(tag, message string) { m.record(LevelInfo, tag, message) }

// Warning records a warning-level line.
func (m *MockSink) Warning(tag, message string) { m.record(LevelWarning, tag, message) }

// Error records an error-level line.
func (m *MockSink) Error(tag, message string) { m.record(LevelError, tag, message) }

// GetEntries returns a copy of all captured lines.
func (m *MockSink) GetEntries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := make([]LogEntry, len(m.Entries))
	copy(entries, m.Entries)
	return entries
}

// GetEntriesByLevel returns all captured lines of a specific level.
func (m *MockSink) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Last returns the most recent line, or false when nothing was written.
func (m *MockSink) Last() (LogEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Entries) == 0 {
		return LogEntry{}, false
	}
	return m.Entries[len(m.Entries)-1], true
}

// Clear removes all captured lines.
func (m *MockSink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = []LogEntry{}
}

// HasEntry checks if a line with the given level, tag and message exists.
func (m *MockSink) HasEntry(level, tag, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Tag == tag && entry.Message == message {
			return true
		}
	}
	return false
}
