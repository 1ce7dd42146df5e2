//go:build !nolog

package logger_test

import (
	"log/slog"
	"os"

	"github.com/philipp01105/qlog/engine"
	"github.com/philipp01105/qlog/engine/slogengine"
	"github.com/philipp01105/qlog/logger"
)

// exampleEngine writes slog text without timestamps so output is stable
func exampleEngine() engine.Engine {
	return slogengine.NewWithHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogengine.LevelTrace,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Messages below the threshold are dropped before formatting.
func Example() {
	prev := logger.SetEngine(exampleEngine())
	defer logger.SetEngine(prev)

	logger.SetLevel(logger.InfoLevel)
	logger.Get().Warnf("value=%d", 42)
	logger.Get().Debugf("x=%d", 1)
	// Output:
	// level=WARN msg="value=42"
}

type Conn struct {
	fd int
}

func (c *Conn) Close() error {
	logger.TypeFunc(c).Infof("closing fd %d", c.fd)
	return nil
}

// Prefix messages with the receiver type and method name.
func ExampleTypeFunc() {
	prev := logger.SetEngine(exampleEngine())
	defer logger.SetEngine(prev)
	logger.SetLevel(logger.InfoLevel)

	c := &Conn{fd: 7}
	_ = c.Close()
	logger.Type(c).Infof("closed")
	// Output:
	// level=INFO msg="logger_test.Conn::Close: closing fd 7"
	// level=INFO msg="logger_test.Conn: closed"
}

// Defer expensive arguments until the message is known to be written.
func ExampleLazy() {
	prev := logger.SetEngine(exampleEngine())
	defer logger.SetEngine(prev)
	logger.SetLevel(logger.InfoLevel)

	expensive := func() any { return "snapshot" }
	logger.Get().Debugf("state=%v", logger.Lazy(expensive))
	logger.Get().Infof("state=%v", logger.Lazy(expensive))
	// Output:
	// level=INFO msg="state=snapshot"
}
