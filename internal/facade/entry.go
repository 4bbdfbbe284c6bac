package facade

import (
	"fmt"
	"reflect"
)

// Messages substituted for nil payloads.
const (
	NullException = "Exception is null"
	NullObject    = "Object is null"
)

// PayloadKind tells the facade how to turn an Entry payload into text.
type PayloadKind int

const (
	// AutoPayload picks the kind from the payload's dynamic type: string
	// values are text, error values are exceptions, the rest are objects.
	AutoPayload PayloadKind = iota
	TextPayload
	ExceptionPayload
	ObjectPayload
)

// Entry is a single log call: where it comes from, what to write and
// whether to pretty-print it as JSON. Build one with Msg, Text, Exception
// or Object and refine it with WithTag and AsJSON.
type Entry struct {
	// Tag is a string, a reflect.Type, any other value whose type names the
	// tag, or nil for the facade's default tag.
	Tag     interface{}
	Payload interface{}
	Kind    PayloadKind
	JSON    bool
}

// Msg builds an entry whose payload kind follows the value's dynamic type.
// An untyped nil takes the object path and logs NullObject.
func Msg(v interface{}) Entry {
	return Entry{Payload: v}
}

// Text builds an entry logging s verbatim.
func Text(s string) Entry {
	return Entry{Payload: s, Kind: TextPayload}
}

// Exception builds an entry logging err's message, or NullException when
// err is nil.
func Exception(err error) Entry {
	return Entry{Payload: err, Kind: ExceptionPayload}
}

// Object builds an entry logging the textual form of v, or NullObject
// when v is nil.
func Object(v interface{}) Entry {
	return Entry{Payload: v, Kind: ObjectPayload}
}

// WithTag returns a copy of e with its tag source replaced.
func (e Entry) WithTag(tag interface{}) Entry {
	e.Tag = tag
	return e
}

// AsJSON returns a copy of e that pretty-prints its message as JSON.
func (e Entry) AsJSON() Entry {
	e.JSON = true
	return e
}

// resolvePayload renders the entry payload. The boolean reports whether the
// text may go through PrettyPrint; the nil substitutes never do.
func resolvePayload(e Entry) (string, bool) {
	kind := e.Kind
	if kind == AutoPayload {
		kind = kindOf(e.Payload)
	}

	switch kind {
	case TextPayload:
		if s, ok := e.Payload.(string); ok {
			return s, true
		}
		return fmt.Sprint(e.Payload), true
	case ExceptionPayload:
		if isNil(e.Payload) {
			return NullException, false
		}
		return fmt.Sprint(e.Payload), true
	default:
		if isNil(e.Payload) {
			return NullObject, false
		}
		return fmt.Sprint(e.Payload), true
	}
}

func kindOf(v interface{}) PayloadKind {
	switch v.(type) {
	case string:
		return TextPayload
	case error:
		return ExceptionPayload
	default:
		return ObjectPayload
	}
}

// isNil reports whether v is nil or an interface holding a nil reference.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
