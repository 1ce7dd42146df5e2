package logger

import (
	"sync"
	"sync/atomic"

	"github.com/philipp01105/qlog/engine"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	// constructions counts singleton builds; it never exceeds one
	constructions atomic.Int32
)

// Get returns the process-wide Logger, constructing it on first use.
// Concurrent first calls block until the single construction finishes.
func Get() *Logger {
	defaultOnce.Do(func() {
		constructions.Add(1)
		defaultLogger = construct()
	})
	return defaultLogger
}

// SetLevel sets the minimum severity of the process-wide Logger
func SetLevel(level Level) {
	Get().SetLevel(level)
}

// GetLevel returns the minimum severity of the process-wide Logger
func GetLevel() Level {
	return Get().Level()
}

// SetEngine replaces the engine of the process-wide Logger and returns the previous one
func SetEngine(e engine.Engine) engine.Engine {
	return Get().SetEngine(e)
}

// Sync flushes the engine of the process-wide Logger
func Sync() error {
	return Get().Sync()
}
