package facade

import (
	"fmt"
	"strings"
)

// Severity selects the sink channel a line is written to.
type Severity int

// Severities, one per sink operation. The facade attaches no priority to
// their order; filtering is left to the sink.
const (
	VerboseLevel Severity = iota
	DebugLevel
	InfoLevel
	WarningLevel
	ErrorLevel
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case VerboseLevel:
		return "verbose"
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarningLevel:
		return "warning"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name to a Severity. Matching is
// case-insensitive and "warn" is accepted as an alias of "warning".
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "verbose":
		return VerboseLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown severity %q (must be one of verbose, debug, info, warning, error)", name)
	}
}
