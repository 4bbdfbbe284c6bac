// Package facade implements the logging facade: it resolves a tag and a
// payload from loosely typed caller input and writes exactly one line to a
// severity-leveled sink. Nothing in this package returns an error or panics
// on bad input; nil payloads and malformed JSON are replaced by fixed
// diagnostic text logged at the requested severity.
package facade

import (
	"sync"

	"alshakib/logcompat/internal/logging"
)

// DefaultTag is the tag used when neither the caller nor WithDefaultTag
// supplies one.
const DefaultTag = "LogCompat"

// Facade forwards log entries to a Sink. It is safe for concurrent use as
// long as the sink is.
type Facade struct {
	sink logging.Sink

	mu         sync.RWMutex
	defaultTag string
}

// Option configures a Facade.
type Option func(*Facade)

// WithDefaultTag sets the tag used for entries without one.
func WithDefaultTag(tag string) Option {
	return func(f *Facade) {
		f.defaultTag = tag
	}
}

// New creates a Facade writing to sink. A nil sink discards every line.
func New(sink logging.Sink, opts ...Option) *Facade {
	if sink == nil {
		sink = logging.NopSink{}
	}
	f := &Facade{
		sink:       sink,
		defaultTag: DefaultTag,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetDefaultTag replaces the default tag. The last call wins and applies to
// every later entry that has no tag of its own.
func (f *Facade) SetDefaultTag(tag string) {
	f.mu.Lock()
	f.defaultTag = tag
	f.mu.Unlock()
}

func (f *Facade) currentDefaultTag() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.defaultTag
}

// Log writes entry to the sink channel matching severity.
func (f *Facade) Log(severity Severity, entry Entry) {
	tag := f.resolveTag(entry.Tag)
	message, transformable := resolvePayload(entry)
	if entry.JSON && transformable {
		message = PrettyPrint(message)
	}
	f.write(severity, tag, message)
}

// Verbose writes entry at verbose severity.
func (f *Facade) Verbose(entry Entry) { f.Log(VerboseLevel, entry) }

// Debug writes entry at debug severity.
func (f *Facade) Debug(entry Entry) { f.Log(DebugLevel, entry) }

// Info writes entry at info severity.
func (f *Facade) Info(entry Entry) { f.Log(InfoLevel, entry) }

// Warning writes entry at warning severity.
func (f *Facade) Warning(entry Entry) { f.Log(WarningLevel, entry) }

// Error writes entry at error severity.
func (f *Facade) Error(entry Entry) { f.Log(ErrorLevel, entry) }

// write makes the single sink call. Unknown severities land on Info.
func (f *Facade) write(severity Severity, tag, message string) {
	switch severity {
	case VerboseLevel:
		f.sink.Verbose(tag, message)
	case DebugLevel:
		f.sink.Debug(tag, message)
	case WarningLevel:
		f.sink.Warning(tag, message)
	case ErrorLevel:
		f.sink.Error(tag, message)
	default:
		f.sink.Info(tag, message)
	}
}
