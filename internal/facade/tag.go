package facade

import (
	"reflect"
	"strings"
)

// resolveTag turns a tag source into the tag string handed to the sink.
//
//   - nil: the facade's current default tag
//   - string: used verbatim
//   - reflect.Type: the type's simple name
//   - anything else: the simple name of the value's runtime type
func (f *Facade) resolveTag(source interface{}) string {
	switch t := source.(type) {
	case nil:
		return f.currentDefaultTag()
	case string:
		return t
	case reflect.Type:
		return TypeName(t)
	default:
		return SimpleTypeName(t)
	}
}

// SimpleTypeName returns the unqualified name of v's runtime type, or an
// empty string for nil.
func SimpleTypeName(v interface{}) string {
	if v == nil {
		return ""
	}
	return TypeName(reflect.TypeOf(v))
}

// TypeName returns the unqualified name of t. Pointer types resolve to their
// element type and generic instantiations drop their type arguments, so
// *Cache[string] yields "Cache". Unnamed types such as map[string]int
// fall back to their type literal.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
