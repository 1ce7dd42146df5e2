// Package slogengine adapts any log/slog Handler to the qlog engine
// contract. This lets qlog write through the standard library handlers
// or any third-party slog backend.
package slogengine

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/philipp01105/qlog/core"
)

const (
	// LevelTrace is the slog level used for core.TraceLevel
	LevelTrace = slog.LevelDebug - 4
	// LevelCritical is the slog level used for core.CriticalLevel
	LevelCritical = slog.LevelError + 4
	// levelOff is above every level the engine writes
	levelOff = LevelCritical + 4
)

// Config holds slog engine configuration
type Config struct {
	// Writer receives the output (default: os.Stderr)
	Writer io.Writer
	// Format is "console" (default, slog text) or "json"
	Format string
	// Closer is closed by Engine.Close when set
	Closer io.Closer
}

// Engine writes messages through a slog.Handler
type Engine struct {
	handler slog.Handler
	level   *slog.LevelVar
	closer  io.Closer
}

// New creates an engine backed by slog's text or JSON handler
func New(cfg Config) *Engine {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	e := &Engine{level: new(slog.LevelVar), closer: cfg.Closer}
	e.level.Set(slog.LevelInfo)

	opts := &slog.HandlerOptions{
		Level:       e.level,
		ReplaceAttr: replaceLevel,
	}
	if cfg.Format == "json" {
		e.handler = slog.NewJSONHandler(cfg.Writer, opts)
	} else {
		e.handler = slog.NewTextHandler(cfg.Writer, opts)
	}
	return e
}

// NewWithHandler wraps an existing handler. The engine applies its own
// threshold on top of the handler's.
func NewWithHandler(h slog.Handler) *Engine {
	e := &Engine{handler: h, level: new(slog.LevelVar)}
	e.level.Set(slog.LevelInfo)
	return e
}

// replaceLevel names the two levels slog does not know about
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch lvl {
	case LevelTrace:
		a.Value = slog.StringValue("TRACE")
	case LevelCritical:
		a.Value = slog.StringValue("CRITICAL")
	}
	return a
}

// toSlog converts a core.Level to a slog.Level
func toSlog(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return LevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.CriticalLevel:
		return LevelCritical
	default:
		return levelOff
	}
}

// SetLevel sets the minimum level
func (e *Engine) SetLevel(level core.Level) {
	e.level.Set(toSlog(level.Clamp()))
}

// Enabled reports whether level passes the threshold and the handler
func (e *Engine) Enabled(level core.Level) bool {
	if level < core.TraceLevel || level >= core.OffLevel {
		return false
	}
	sl := toSlog(level)
	return sl >= e.level.Level() && e.handler.Enabled(context.Background(), sl)
}

// Log writes msg at level
func (e *Engine) Log(level core.Level, msg string) {
	if !e.Enabled(level) {
		return
	}
	r := slog.NewRecord(time.Now(), toSlog(level), msg, 0)
	_ = e.handler.Handle(context.Background(), r)
}

// Sync is a no-op; slog handlers write synchronously
func (e *Engine) Sync() error {
	return nil
}

// Close closes the configured Closer
func (e *Engine) Close() error {
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}
