package engine

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/qlog/core"
)

// MultiEngine sends every message to multiple engines
type MultiEngine struct {
	engines []Engine
}

// NewMultiEngine creates a new fan-out engine
func NewMultiEngine(engines ...Engine) *MultiEngine {
	return &MultiEngine{engines: engines}
}

// SetLevel forwards the threshold to every child
func (m *MultiEngine) SetLevel(level core.Level) {
	for _, e := range m.engines {
		e.SetLevel(level)
	}
}

// Enabled reports whether any child would write a message at level
func (m *MultiEngine) Enabled(level core.Level) bool {
	for _, e := range m.engines {
		if e.Enabled(level) {
			return true
		}
	}
	return false
}

// Log writes msg to each child that accepts the level
func (m *MultiEngine) Log(level core.Level, msg string) {
	for _, e := range m.engines {
		if e.Enabled(level) {
			e.Log(level, msg)
		}
	}
}

// Sync flushes all children and combines their errors
func (m *MultiEngine) Sync() error {
	var err error
	for _, e := range m.engines {
		err = multierr.Append(err, e.Sync())
	}
	return err
}

// Close closes all children and combines their errors
func (m *MultiEngine) Close() error {
	var err error
	for _, e := range m.engines {
		err = multierr.Append(err, e.Close())
	}
	return err
}
