//go:build !nolog

package logger

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/qlog/config"
	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/engine"
)

// Enabled is false when the module is built with the nolog tag. Guard
// argument expressions with side effects or real cost behind it; the
// compiler drops the whole block in nolog builds:
//
//	if logger.Enabled {
//		logger.Debugf("cache=%s", cache.Dump())
//	}
const Enabled = true

// buildEngine turns a configuration into an engine; tests replace it
var buildEngine = config.Build

// construct builds the process-wide Logger from config.Load, falling
// back to config.Default when loading or building fails.
func construct() *Logger {
	cfg, err := config.Load()
	e, buildErr := buildEngine(cfg)
	if buildErr != nil {
		err = multierr.Append(err, buildErr)
		cfg = config.Default()
		if e, buildErr = buildEngine(cfg); buildErr != nil {
			e = engine.Nop()
		}
	}

	l := newLogger(e)
	l.SetStrict(cfg.Strict)
	l.SetLevel(cfg.LogLevel())
	if err != nil {
		l.Warnf("qlog: using default configuration: %v", err)
	}
	return l
}

// Enabled reports whether a message at level would reach the engine
func (l *Logger) Enabled(level Level) bool {
	return l.admit(level) != nil
}

// Tracef logs a trace message
func (l *Logger) Tracef(template string, args ...any) {
	if e := l.admit(TraceLevel); e != nil {
		e.Log(TraceLevel, l.sprintf(template, args...))
	}
}

// Debugf logs a debug message
func (l *Logger) Debugf(template string, args ...any) {
	if e := l.admit(DebugLevel); e != nil {
		e.Log(DebugLevel, l.sprintf(template, args...))
	}
}

// Infof logs an info message
func (l *Logger) Infof(template string, args ...any) {
	if e := l.admit(InfoLevel); e != nil {
		e.Log(InfoLevel, l.sprintf(template, args...))
	}
}

// Warnf logs a warning message
func (l *Logger) Warnf(template string, args ...any) {
	if e := l.admit(WarnLevel); e != nil {
		e.Log(WarnLevel, l.sprintf(template, args...))
	}
}

// Errorf logs an error message
func (l *Logger) Errorf(template string, args ...any) {
	if e := l.admit(ErrorLevel); e != nil {
		e.Log(ErrorLevel, l.sprintf(template, args...))
	}
}

// Criticalf logs a critical message
func (l *Logger) Criticalf(template string, args ...any) {
	if e := l.admit(CriticalLevel); e != nil {
		e.Log(CriticalLevel, l.sprintf(template, args...))
	}
}

// Logf logs a message at a level chosen at run time. The level is clamped.
func (l *Logger) Logf(level Level, template string, args ...any) {
	level = level.Clamp()
	if e := l.admit(level); e != nil {
		e.Log(level, l.sprintf(template, args...))
	}
}

// Package-level functions log through Get() and prefix every message
// with the caller's "[file:line]".

// Tracef logs a trace message with site context
func Tracef(template string, args ...any) {
	l := Get()
	if e := l.admit(TraceLevel); e != nil {
		e.Log(TraceLevel, sitePrefix(1)+l.sprintf(template, args...))
	}
}

// Debugf logs a debug message with site context
func Debugf(template string, args ...any) {
	l := Get()
	if e := l.admit(DebugLevel); e != nil {
		e.Log(DebugLevel, sitePrefix(1)+l.sprintf(template, args...))
	}
}

// Infof logs an info message with site context
func Infof(template string, args ...any) {
	l := Get()
	if e := l.admit(InfoLevel); e != nil {
		e.Log(InfoLevel, sitePrefix(1)+l.sprintf(template, args...))
	}
}

// Warnf logs a warning message with site context
func Warnf(template string, args ...any) {
	l := Get()
	if e := l.admit(WarnLevel); e != nil {
		e.Log(WarnLevel, sitePrefix(1)+l.sprintf(template, args...))
	}
}

// Errorf logs an error message with site context
func Errorf(template string, args ...any) {
	l := Get()
	if e := l.admit(ErrorLevel); e != nil {
		e.Log(ErrorLevel, sitePrefix(1)+l.sprintf(template, args...))
	}
}

// Criticalf logs a critical message with site context
func Criticalf(template string, args ...any) {
	l := Get()
	if e := l.admit(CriticalLevel); e != nil {
		e.Log(CriticalLevel, sitePrefix(1)+l.sprintf(template, args...))
	}
}

// Logf logs a message with site context at a level chosen at run time
func Logf(level Level, template string, args ...any) {
	level = level.Clamp()
	l := Get()
	if e := l.admit(level); e != nil {
		e.Log(level, sitePrefix(1)+l.sprintf(template, args...))
	}
}

// Type returns a Scope that prefixes messages with the dynamic type of
// recv, e.g. "server.Conn: ". Call it from methods with the receiver.
func Type(recv any) Scope {
	return Scope{recv: recv, typed: true}
}

// Func returns a Scope that prefixes messages with the name of the
// calling function, e.g. "dial: ".
func Func() Scope {
	return Scope{fn: core.ShortFuncName(core.GetCaller(1).Function)}
}

// TypeFunc returns a Scope that prefixes messages with the type of recv
// and the calling method, e.g. "server.Conn::Close: ".
func TypeFunc(recv any) Scope {
	return Scope{recv: recv, typed: true, fn: core.ShortFuncName(core.GetCaller(1).Function)}
}

// WithSite returns a copy of s that also prefixes "[file:line]" of each
// logging call.
func (s Scope) WithSite() Scope {
	s.site = true
	return s
}

// Tracef logs a trace message with the scope's context
func (s Scope) Tracef(template string, args ...any) {
	l := Get()
	if e := l.admit(TraceLevel); e != nil {
		e.Log(TraceLevel, s.prefix(1)+l.sprintf(template, args...))
	}
}

// Debugf logs a debug message with the scope's context
func (s Scope) Debugf(template string, args ...any) {
	l := Get()
	if e := l.admit(DebugLevel); e != nil {
		e.Log(DebugLevel, s.prefix(1)+l.sprintf(template, args...))
	}
}

// Infof logs an info message with the scope's context
func (s Scope) Infof(template string, args ...any) {
	l := Get()
	if e := l.admit(InfoLevel); e != nil {
		e.Log(InfoLevel, s.prefix(1)+l.sprintf(template, args...))
	}
}

// Warnf logs a warning message with the scope's context
func (s Scope) Warnf(template string, args ...any) {
	l := Get()
	if e := l.admit(WarnLevel); e != nil {
		e.Log(WarnLevel, s.prefix(1)+l.sprintf(template, args...))
	}
}

// Errorf logs an error message with the scope's context
func (s Scope) Errorf(template string, args ...any) {
	l := Get()
	if e := l.admit(ErrorLevel); e != nil {
		e.Log(ErrorLevel, s.prefix(1)+l.sprintf(template, args...))
	}
}

// Criticalf logs a critical message with the scope's context
func (s Scope) Criticalf(template string, args ...any) {
	l := Get()
	if e := l.admit(CriticalLevel); e != nil {
		e.Log(CriticalLevel, s.prefix(1)+l.sprintf(template, args...))
	}
}

// Logf logs a message with the scope's context at a level chosen at run time
func (s Scope) Logf(level Level, template string, args ...any) {
	level = level.Clamp()
	l := Get()
	if e := l.admit(level); e != nil {
		e.Log(level, s.prefix(1)+l.sprintf(template, args...))
	}
}
