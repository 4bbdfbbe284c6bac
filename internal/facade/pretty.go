package facade

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
)

// InvalidJSONPrefix is prepended to messages PrettyPrint cannot parse.
const InvalidJSONPrefix = "Invalid JSON object: "

const jsonIndent = "    "

var lineSeparator = platformLineSeparator()

func platformLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// PrettyPrint re-serializes a JSON object with 4-space indentation, prefixed
// with a space and a line separator so the object starts on its own line.
// Key order and number literals are kept as written. Anything that is not a
// single well-formed JSON object (arrays and scalars included) comes back as
// InvalidJSONPrefix followed by the original message.
func PrettyPrint(message string) string {
	src := []byte(strings.TrimSpace(message))
	if !isJSONObject(src) {
		return InvalidJSONPrefix + message
	}

	var out bytes.Buffer
	if err := json.Indent(&out, src, "", jsonIndent); err != nil {
		return InvalidJSONPrefix + message
	}
	return " " + lineSeparator + out.String()
}

func isJSONObject(src []byte) bool {
	return len(src) > 0 && src[0] == '{' && json.Valid(src)
}
