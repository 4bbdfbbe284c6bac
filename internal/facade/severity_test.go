package facade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "verbose", VerboseLevel.String())
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "info", InfoLevel.String())
	assert.Equal(t, "warning", WarningLevel.String())
	assert.Equal(t, "error", ErrorLevel.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
	}{
		{"verbose", VerboseLevel},
		{"DEBUG", DebugLevel},
		{" info ", InfoLevel},
		{"warning", WarningLevel},
		{"warn", WarningLevel},
		{"Error", ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeverity(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseSeverity_Unknown(t *testing.T) {
	_, err := ParseSeverity("fatal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown severity "fatal"`)
}
