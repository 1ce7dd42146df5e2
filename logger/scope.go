package logger

import (
	"strconv"

	"github.com/philipp01105/qlog/core"
)

// Scope prepends caller context to messages. Obtain one with Type, Func
// or TypeFunc; the zero Scope adds nothing. Scopes are values and may be
// stored and reused.
type Scope struct {
	recv  any
	typed bool
	fn    string
	site  bool
}

// prefix renders "[file:line]" (when site is set) followed by "T: ",
// "f: " or "T::f: ". skip counts frames above prefix's caller.
func (s Scope) prefix(skip int) string {
	var p string
	if s.site {
		p = sitePrefix(skip + 1)
	}
	switch {
	case s.typed && s.fn != "":
		return p + core.TypeName(s.recv) + "::" + s.fn + ": "
	case s.typed:
		return p + core.TypeName(s.recv) + ": "
	case s.fn != "":
		return p + s.fn + ": "
	default:
		return p
	}
}

// sitePrefix renders "[file:line]" for the frame skip levels above its caller
func sitePrefix(skip int) string {
	c := core.GetCaller(skip + 1)
	if !c.Defined {
		return ""
	}
	return "[" + c.ShortFile + ":" + strconv.Itoa(c.Line) + "]"
}
