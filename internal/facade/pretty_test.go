package facade

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint_Object(t *testing.T) {
	got := PrettyPrint(`{"a":1}`)

	assert.Equal(t, " "+lineSeparator+"{\n    \"a\": 1\n}", got)
}

func TestPrettyPrint_RoundTrip(t *testing.T) {
	input := `{"title":"Blue in Green","id":7,"tags":["jazz","modal"],"meta":{"live":false,"rating":4.5}}`

	got := PrettyPrint(input)
	require.True(t, strings.HasPrefix(got, " "+lineSeparator), "output should start with space and line separator")

	var original, printed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(input), &original))
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(got, " "+lineSeparator)), &printed))
	assert.Equal(t, original, printed)
}

func TestPrettyPrint_PreservesKeyOrderAndNumbers(t *testing.T) {
	got := PrettyPrint(`{"z":12345678901234567890,"a":1.50}`)

	assert.Contains(t, got, "12345678901234567890")
	assert.Contains(t, got, "1.50")
	assert.Less(t, strings.Index(got, `"z"`), strings.Index(got, `"a"`))
}

func TestPrettyPrint_NestedIndentation(t *testing.T) {
	got := PrettyPrint(`{"outer":{"inner":true}}`)

	assert.Contains(t, got, "\n    \"outer\": {\n        \"inner\": true\n    }\n}")
}

func TestPrettyPrint_SurroundingWhitespace(t *testing.T) {
	got := PrettyPrint("  {\"a\":1}\n")

	assert.Equal(t, " "+lineSeparator+"{\n    \"a\": 1\n}", got)
}

func TestPrettyPrint_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "not json"},
		{"array", "[1,2,3]"},
		{"string scalar", `"hello"`},
		{"number scalar", "42"},
		{"null", "null"},
		{"truncated object", `{"a":`},
		{"trailing garbage", `{"a":1} extra`},
		{"two objects", `{"a":1}{"b":2}`},
		{"unquoted key", `{a:1}`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, InvalidJSONPrefix+tt.input, PrettyPrint(tt.input))
		})
	}
}

func TestPrettyPrint_NotJSONExact(t *testing.T) {
	assert.Equal(t, "Invalid JSON object: not json", PrettyPrint("not json"))
}

func TestPrettyPrint_EmptyObject(t *testing.T) {
	assert.Equal(t, " "+lineSeparator+"{}", PrettyPrint("{}"))
}
