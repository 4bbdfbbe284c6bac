// Package logcompat is the public entry point of the logging facade.
//
// A Facade resolves a tag and a message from loosely typed input and writes
// exactly one line to a Sink:
//
//	sink := logcompat.NewLogrusSink("debug", "text", os.Stderr)
//	log := logcompat.New(sink, logcompat.WithDefaultTag("Player"))
//
//	log.Info(logcompat.Text("ready"))
//	log.Error(logcompat.Exception(err).WithTag(p))
//	log.Debug(logcompat.Object(track).AsJSON())
//
// Tags come from a string, a reflect.Type, any value (its type's simple
// name) or, when absent, the facade's default tag. Payloads come from a
// string, an error or any value's textual form; nil payloads log
// NullException or NullObject. AsJSON pretty-prints JSON object payloads.
// The facade never returns errors and never panics on bad input.
package logcompat

import (
	"io"

	"alshakib/logcompat/internal/facade"
	"alshakib/logcompat/internal/logging"
)

type (
	// Facade forwards entries to a Sink.
	Facade = facade.Facade
	// Option configures a Facade.
	Option = facade.Option
	// Entry describes a single log call.
	Entry = facade.Entry
	// PayloadKind selects how an Entry payload becomes text.
	PayloadKind = facade.PayloadKind
	// Severity selects the sink channel.
	Severity = facade.Severity
	// Sink is the severity-leveled backend a Facade writes to.
	Sink = logging.Sink
)

const (
	VerboseLevel = facade.VerboseLevel
	DebugLevel   = facade.DebugLevel
	InfoLevel    = facade.InfoLevel
	WarningLevel = facade.WarningLevel
	ErrorLevel   = facade.ErrorLevel

	AutoPayload      = facade.AutoPayload
	TextPayload      = facade.TextPayload
	ExceptionPayload = facade.ExceptionPayload
	ObjectPayload    = facade.ObjectPayload

	DefaultTag        = facade.DefaultTag
	NullException     = facade.NullException
	NullObject        = facade.NullObject
	InvalidJSONPrefix = facade.InvalidJSONPrefix
)

// New creates a Facade writing to sink.
func New(sink Sink, opts ...Option) *Facade {
	return facade.New(sink, opts...)
}

// WithDefaultTag sets the tag used for entries without one.
func WithDefaultTag(tag string) Option {
	return facade.WithDefaultTag(tag)
}

// NewLogrusSink returns a Sink backed by a new logrus logger.
func NewLogrusSink(level, format string, out io.Writer) Sink {
	return logging.NewLogrusAdapter(level, format, out)
}

// Msg builds an entry whose payload kind follows the value's dynamic type.
func Msg(v interface{}) Entry { return facade.Msg(v) }

// Text builds an entry logging s verbatim.
func Text(s string) Entry { return facade.Text(s) }

// Exception builds an entry logging err's message.
func Exception(err error) Entry { return facade.Exception(err) }

// Object builds an entry logging the textual form of v.
func Object(v interface{}) Entry { return facade.Object(v) }

// PrettyPrint formats a JSON object with 4-space indentation.
func PrettyPrint(message string) string { return facade.PrettyPrint(message) }

// SimpleTypeName returns the unqualified name of v's runtime type.
func SimpleTypeName(v interface{}) string { return facade.SimpleTypeName(v) }

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(name string) (Severity, error) { return facade.ParseSeverity(name) }
