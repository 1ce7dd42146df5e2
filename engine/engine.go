package engine

import (
	"github.com/philipp01105/qlog/core"
)

// Engine is the contract between the facade and a concrete logging
// backend. The facade formats messages itself; an Engine only filters
// by severity and routes the finished text to its sinks.
type Engine interface {
	// SetLevel sets the minimum severity the engine will write
	SetLevel(level core.Level)

	// Enabled reports whether a message at level would be written
	Enabled(level core.Level) bool

	// Log writes a preformatted message at the given level
	Log(level core.Level, msg string)

	// Sync flushes any buffered output
	Sync() error

	// Close flushes and releases the engine's sinks
	Close() error
}

type nopEngine struct{}

// Nop returns an Engine that discards everything.
func Nop() Engine { return nopEngine{} }

func (nopEngine) SetLevel(core.Level) {}
func (nopEngine) Enabled(core.Level) bool { return false }
func (nopEngine) Log(core.Level, string) {}
func (nopEngine) Sync() error { return nil }
func (nopEngine) Close() error { return nil }
