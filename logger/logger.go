package logger

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/engine"
)

// Logger is the facade over an engine. The process-wide instance is
// obtained with Get; its threshold, engine and strict flag are held in
// atomics so every goroutine observes the same settings. Writers that
// touch both the threshold and the engine hold mu.
type Logger struct {
	mu     sync.Mutex
	engine atomic.Pointer[engineRef]
	level  atomic.Int32
	strict atomic.Bool
}

// engineRef lets an interface value live behind an atomic.Pointer
type engineRef struct {
	engine.Engine
}

// newLogger creates a Logger writing to e at InfoLevel with strict templates
func newLogger(e engine.Engine) *Logger {
	if e == nil {
		e = engine.Nop()
	}
	l := &Logger{}
	l.engine.Store(&engineRef{Engine: e})
	l.strict.Store(true)
	l.SetLevel(InfoLevel)
	return l
}

// SetLevel sets the minimum severity. Out-of-range ranks are clamped to
// TraceLevel or OffLevel.
func (l *Logger) SetLevel(level Level) {
	level = level.Clamp()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level.Store(int32(level))
	l.engine.Load().SetLevel(level)
}

// Level returns the current minimum severity
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetEngine replaces the engine and returns the previous one, which the
// caller may Close. The current level is applied to the new engine.
func (l *Logger) SetEngine(e engine.Engine) engine.Engine {
	if e == nil {
		e = engine.Nop()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	e.SetLevel(l.Level())
	return l.engine.Swap(&engineRef{Engine: e}).Engine
}

// Engine returns the current engine
func (l *Logger) Engine() engine.Engine {
	return l.engine.Load().Engine
}

// SetStrict controls whether a template/argument mismatch panics
func (l *Logger) SetStrict(strict bool) {
	l.strict.Store(strict)
}

// Strict reports whether template checking is enabled
func (l *Logger) Strict() bool {
	return l.strict.Load()
}

// Sync flushes the engine
func (l *Logger) Sync() error {
	return l.engine.Load().Sync()
}

// admit returns the engine when a message at level would be written, or nil
func (l *Logger) admit(level Level) engine.Engine {
	if level < TraceLevel || level >= OffLevel || int32(level) < l.level.Load() {
		return nil
	}
	e := l.engine.Load().Engine
	if !e.Enabled(level) {
		return nil
	}
	return e
}

// sprintf formats a message, panicking with a *core.TemplateError in
// strict mode when the template and arguments disagree
func (l *Logger) sprintf(template string, args ...any) string {
	if l.strict.Load() {
		if err := core.CheckTemplate(template, len(args)); err != nil {
			panic(err)
		}
	}
	return fmt.Sprintf(template, args...)
}
