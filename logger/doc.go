// Package logger is the public API of qlog. Most users only need to
// import this package.
//
// Get returns the process-wide Logger. It is built on first use from
// the configuration found by the config package (zap on stderr at
// InfoLevel when nothing is configured) and lives for the rest of the
// process. Construction happens exactly once even when many goroutines
// race to call Get.
//
// Messages use fmt templates. Every logging function ends in f, so go
// vet checks templates against their arguments at build time. At run
// time a mismatch panics with a *core.TemplateError unless strict mode
// is turned off with SetStrict(false).
//
// Four kinds of call-site context are available:
//
//	logger.Infof("listening on %s", addr)          // [main.go:42]listening on :8080
//	logger.Type(c).Warnf("slow read")             // server.Conn: slow read
//	logger.Func().Errorf("dial failed: %v", err)  // dial: dial failed: ...
//	logger.TypeFunc(c).Infof("fd=%d", c.fd)       // server.Conn::Close: fd=7
//
// Scope.WithSite adds the "[file:line]" prefix to the other three. The
// methods on Logger itself (Get().Infof) add no prefix at all.
//
// Level checks happen before any formatting, so a message below the
// threshold costs a single atomic load. Wrap expensive arguments in Lazy to defer them until
// the message is known to be written.
//
// Building with -tags nolog turns every logging function into an empty
// function and the Enabled constant into false. Call sites compile
// unchanged. Go still evaluates ordinary arguments before an empty call,
// so arguments with side effects belong inside Lazy or behind
// if logger.Enabled.
package logger
