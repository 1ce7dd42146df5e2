package logger

import "fmt"

// Lazy defers computing an argument until the message is formatted.
// A suppressed message never calls the function:
//
//	logger.Debugf("state=%v", logger.Lazy(func() any { return dump(s) }))
type Lazy func() any

// Format implements fmt.Formatter by formatting the computed value with
// the same verb and flags.
func (f Lazy) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, fmt.FormatString(s, verb), f())
}
