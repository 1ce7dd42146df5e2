package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log message
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for failures the process may not survive
	CriticalLevel
	// OffLevel suppresses everything when used as a threshold
	OffLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case OffLevel:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the named levels
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= OffLevel
}

// Clamp maps out-of-range ranks onto the nearest named level
func (l Level) Clamp() Level {
	switch {
	case l < TraceLevel:
		return TraceLevel
	case l > OffLevel:
		return OffLevel
	default:
		return l
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "critical", "crit", "fatal":
		return CriticalLevel, nil
	case "off", "none", "disabled":
		return OffLevel, nil
	default:
		return InfoLevel, errors.Errorf("unknown log level %q", s)
	}
}
