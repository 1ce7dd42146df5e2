// Package logrusengine adapts github.com/sirupsen/logrus to the qlog
// engine contract.
package logrusengine

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/philipp01105/qlog/core"
)

// Config holds logrus engine configuration
type Config struct {
	// Writer receives the output (default: os.Stderr)
	Writer io.Writer
	// Format is "console" (default) or "json"
	Format string
	// Closer is closed by Engine.Close when set
	Closer io.Closer
}

// Engine writes messages through a *logrus.Logger
type Engine struct {
	log    *logrus.Logger
	closer io.Closer
}

// New creates a logrus engine
func New(cfg Config) *Engine {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(cfg.Writer)
	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	e := NewWithLogger(l)
	e.closer = cfg.Closer
	return e
}

// NewWithLogger wraps an existing logrus logger and resets it to info
func NewWithLogger(l *logrus.Logger) *Engine {
	l.SetLevel(logrus.InfoLevel)
	return &Engine{log: l}
}

// toLogrus converts a core.Level to a logrus level. Off maps to
// PanicLevel, which the engine never writes at.
func toLogrus(level core.Level) logrus.Level {
	switch level {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	case core.CriticalLevel:
		return logrus.FatalLevel
	default:
		return logrus.PanicLevel
	}
}

// SetLevel sets the minimum level
func (e *Engine) SetLevel(level core.Level) {
	e.log.SetLevel(toLogrus(level.Clamp()))
}

// Enabled reports whether level passes the logger's threshold
func (e *Engine) Enabled(level core.Level) bool {
	if level < core.TraceLevel || level >= core.OffLevel {
		return false
	}
	return e.log.IsLevelEnabled(toLogrus(level))
}

// Log writes msg at level. Logger.Log neither exits on FatalLevel nor
// panics below PanicLevel.
func (e *Engine) Log(level core.Level, msg string) {
	if !e.Enabled(level) {
		return
	}
	e.log.Log(toLogrus(level), msg)
}

// Sync is a no-op; logrus writes synchronously
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
