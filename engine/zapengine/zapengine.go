// Package zapengine adapts go.uber.org/zap to the qlog engine contract.
//
// zap has no trace or critical severities, so they are mapped onto
// zapcore.DebugLevel-1 and zapcore.DPanicLevel. The logger is never
// built in development mode, which keeps DPanic from panicking.
package zapengine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/qlog/core"
)

const (
	// TraceLevel is the zap level used for core.TraceLevel
	TraceLevel = zapcore.DebugLevel - 1
	// CriticalLevel is the zap level used for core.CriticalLevel
	CriticalLevel = zapcore.DPanicLevel
	// offLevel is above every level zap can emit
	offLevel = zapcore.FatalLevel + 1
)

// Config holds zap engine configuration
type Config struct {
	// Format is "console" (default) or "json"
	Format string
	// OutputPaths are zap sink URLs or file paths (default: stderr)
	OutputPaths []string
}

// Engine writes messages through a *zap.Logger
type Engine struct {
	log   *zap.Logger
	level zap.AtomicLevel
	close func()
}

// New builds a zap logger from cfg
func New(cfg Config) (*Engine, error) {
	paths := cfg.OutputPaths
	if len(paths) == 0 {
		paths = []string{"stderr"}
	}

	ws, closeOutputs, err := zap.Open(paths...)
	if err != nil {
		return nil, errors.Wrapf(err, "zapengine: open outputs %v", paths)
	}

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encoderConfig())
	case "console", "":
		enc = zapcore.NewConsoleEncoder(encoderConfig())
	default:
		closeOutputs()
		return nil, errors.Errorf("zapengine: unknown format %q", cfg.Format)
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	e := &Engine{
		log:   zap.New(zapcore.NewCore(enc, ws, level)),
		level: level,
		close: closeOutputs,
	}
	return e, nil
}

// NewWithCore wraps an existing zapcore.Core. The engine applies its own
// threshold on top of whatever the core enables.
func NewWithCore(c zapcore.Core, opts ...zap.Option) *Engine {
	return &Engine{
		log:   zap.New(c, opts...),
		level: zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
}

// encoderConfig mirrors zap's production config with readable timestamps
// and names for the two extra levels
func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = encodeLevel
	return cfg
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case TraceLevel:
		enc.AppendString("TRACE")
	case CriticalLevel:
		enc.AppendString("CRITICAL")
	default:
		zapcore.CapitalLevelEncoder(l, enc)
	}
}

// toZap converts a core.Level to the zap level it is written at
func toZap(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel:
		return TraceLevel
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.CriticalLevel:
		return CriticalLevel
	default:
		return offLevel
	}
}

// SetLevel sets the minimum level
func (e *Engine) SetLevel(level core.Level) {
	e.level.SetLevel(toZap(level.Clamp()))
}

// Enabled reports whether level passes both the threshold and the core
func (e *Engine) Enabled(level core.Level) bool {
	if level < core.TraceLevel || level >= core.OffLevel {
		return false
	}
	zl := toZap(level)
	return e.level.Enabled(zl) && e.log.Core().Enabled(zl)
}

// Log writes msg at level
func (e *Engine) Log(level core.Level, msg string) {
	if !e.Enabled(level) {
		return
	}
	if ce := e.log.Check(toZap(level), msg); ce != nil {
		ce.Write()
	}
}

// Logger exposes the underlying zap logger
func (e *Engine) Logger() *zap.Logger {
	return e.log
}

// Sync flushes buffered entries
func (e *Engine) Sync() error {
	return e.log.Sync()
}

// Close flushes and closes the outputs opened by New
func (e *Engine) Close() error {
	err := e.log.Sync()
	if e.close != nil {
		e.close()
	}
	return err
}
