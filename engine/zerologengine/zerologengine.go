// Package zerologengine adapts github.com/rs/zerolog to the qlog engine
// contract. Critical messages are written at zerolog.FatalLevel through
// WithLevel, which never exits the process.
package zerologengine

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/philipp01105/qlog/core"
)

// Config holds zerolog engine configuration
type Config struct {
	// Writer receives the output (default: os.Stderr)
	Writer io.Writer
	// Format is "console" (default) or "json"
	Format string
	// Closer is closed by Engine.Close when set
	Closer io.Closer
}

// Engine writes messages through a zerolog.Logger
type Engine struct {
	log    zerolog.Logger
	level  atomic.Int32
	writer io.Writer
	closer io.Closer
}

// New creates a zerolog engine
func New(cfg Config) *Engine {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	out := cfg.Writer
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Writer,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}

	e := NewWithLogger(zerolog.New(out).With().Timestamp().Logger())
	e.writer = cfg.Writer
	e.closer = cfg.Closer
	return e
}

// NewWithLogger wraps an existing zerolog.Logger. The logger's own level
// is lowered to trace so that the engine threshold alone decides.
func NewWithLogger(l zerolog.Logger) *Engine {
	e := &Engine{log: l.Level(zerolog.TraceLevel)}
	e.level.Store(int32(core.InfoLevel))
	return e
}

// toZerolog converts a core.Level to a zerolog level
func toZerolog(level core.Level) zerolog.Level {
	switch level {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.CriticalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}

// SetLevel sets the minimum level
func (e *Engine) SetLevel(level core.Level) {
	e.level.Store(int32(level.Clamp()))
}

// Enabled reports whether level passes the threshold and zerolog's global level
func (e *Engine) Enabled(level core.Level) bool {
	if level < core.TraceLevel || level >= core.OffLevel {
		return false
	}
	return int32(level) >= e.level.Load() && toZerolog(level) >= zerolog.GlobalLevel()
}

// Log writes msg at level
func (e *Engine) Log(level core.Level, msg string) {
	if !e.Enabled(level) {
		return
	}
	e.log.WithLevel(toZerolog(level)).Msg(msg)
}

// Sync flushes the writer when the engine owns it. Syncing a terminal
// returns EINVAL on most platforms, so shared stdio is left alone.
func (e *Engine) Sync() error {
	if s, ok := e.writer.(interface{ Sync() error }); ok && e.closer != nil {
		return s.Sync()
	}
	return nil
}

// Close closes the configured Closer
func (e *Engine) Close() error {
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}
