//go:build nolog

package logger

import (
	"github.com/philipp01105/qlog/engine"
)

// Enabled is false in nolog builds; blocks guarded by it are removed
// by the compiler.
const Enabled = false

// construct builds a Logger bound to a discarding engine without
// reading any configuration.
func construct() *Logger {
	return newLogger(engine.Nop())
}

// Enabled always reports false in nolog builds
func (l *Logger) Enabled(Level) bool { return false }

// Tracef is a no-op in nolog builds
func (l *Logger) Tracef(string, ...any) {}

// Debugf is a no-op in nolog builds
func (l *Logger) Debugf(string, ...any) {}

// Infof is a no-op in nolog builds
func (l *Logger) Infof(string, ...any) {}

// Warnf is a no-op in nolog builds
func (l *Logger) Warnf(string, ...any) {}

// Errorf is a no-op in nolog builds
func (l *Logger) Errorf(string, ...any) {}

// Criticalf is a no-op in nolog builds
func (l *Logger) Criticalf(string, ...any) {}

// Logf is a no-op in nolog builds
func (l *Logger) Logf(Level, string, ...any) {}

// Tracef is a no-op in nolog builds
func Tracef(string, ...any) {}

// Debugf is a no-op in nolog builds
func Debugf(string, ...any) {}

// Infof is a no-op in nolog builds
func Infof(string, ...any) {}

// Warnf is a no-op in nolog builds
func Warnf(string, ...any) {}

// Errorf is a no-op in nolog builds
func Errorf(string, ...any) {}

// Criticalf is a no-op in nolog builds
func Criticalf(string, ...any) {}

// Logf is a no-op in nolog builds
func Logf(Level, string, ...any) {}

// Type returns the zero Scope in nolog builds
func Type(any) Scope { return Scope{} }

// Func returns the zero Scope in nolog builds
func Func() Scope { return Scope{} }

// TypeFunc returns the zero Scope in nolog builds
func TypeFunc(any) Scope { return Scope{} }

// WithSite returns s unchanged in nolog builds
func (s Scope) WithSite() Scope { return s }

// Tracef is a no-op in nolog builds
func (s Scope) Tracef(string, ...any) {}

// Debugf is a no-op in nolog builds
func (s Scope) Debugf(string, ...any) {}

// Infof is a no-op in nolog builds
func (s Scope) Infof(string, ...any) {}

// Warnf is a no-op in nolog builds
func (s Scope) Warnf(string, ...any) {}

// Errorf is a no-op in nolog builds
func (s Scope) Errorf(string, ...any) {}

// Criticalf is a no-op in nolog builds
func (s Scope) Criticalf(string, ...any) {}

// Logf is a no-op in nolog builds
func (s Scope) Logf(Level, string, ...any) {}
