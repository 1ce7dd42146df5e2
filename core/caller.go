package core

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
)

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information. A skip of 0 identifies the
// function that called GetCaller.
func GetCaller(skip int) CallerInfo {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return CallerInfo{}
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	if frame.PC == 0 {
		return CallerInfo{}
	}

	return CallerInfo{
		File:      frame.File,
		ShortFile: filepath.Base(frame.File),
		Line:      frame.Line,
		Function:  frame.Function,
		Defined:   true,
	}
}

// ShortFuncName strips the import path and receiver from a fully
// qualified function name, so "example.com/pkg.(*Conn).Close" becomes
// "Close". Closures keep their enclosing function: "pkg.run.func1"
// becomes "run.func1".
func ShortFuncName(full string) string {
	// generic instantiations are reported as "F[...]"
	full = strings.ReplaceAll(full, "[...]", "")
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.IndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}

	var parts []string
	for _, p := range strings.Split(full, ".") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	start := 0
	for i, p := range parts {
		if !isClosureName(p) {
			start = i
		}
	}
	return strings.Join(parts[start:], ".")
}

// isClosureName reports whether p is a compiler-generated closure
// segment such as "func1" or the "2" in "func1.2"
func isClosureName(p string) bool {
	p = strings.TrimPrefix(p, "func")
	if p == "" {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// TypeName returns the dynamic type name of v with pointer indirections
// removed, e.g. "server.Conn" for a *server.Conn.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
