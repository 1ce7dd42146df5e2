package slogengine

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/qlog/core"
)

func TestEngine_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	e := New(Config{Writer: &buf})

	e.Log(core.DebugLevel, "debug message")
	if buf.Len() > 0 {
		t.Error("Debug message was logged when level is Info")
	}

	e.Log(core.WarnLevel, "value=42")
	if !strings.Contains(buf.String(), "level=WARN") || !strings.Contains(buf.String(), "value=42") {
		t.Errorf("Expected warn entry, got: %s", buf.String())
	}

	buf.Reset()
	e.SetLevel(core.OffLevel)
	e.Log(core.CriticalLevel, "critical message")
	if buf.Len() > 0 {
		t.Errorf("Critical message was logged when level is Off: %s", buf.String())
	}
}

func TestEngine_LevelNames(t *testing.T) {
	var buf bytes.Buffer
	e := New(Config{Writer: &buf, Format: "json"})
	e.SetLevel(core.TraceLevel)

	e.Log(core.TraceLevel, "trace message")
	e.Log(core.CriticalLevel, "critical message")

	output := buf.String()
	if !strings.Contains(output, `"level":"TRACE"`) {
		t.Errorf("Expected TRACE level name, got: %s", output)
	}
	if !strings.Contains(output, `"level":"CRITICAL"`) {
		t.Errorf("Expected CRITICAL level name, got: %s", output)
	}
}

// captureHandler records every record it receives
type captureHandler struct {
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func TestNewWithHandler(t *testing.T) {
	h := &captureHandler{}
	e := NewWithHandler(h)

	e.Log(core.TraceLevel, "suppressed")
	e.Log(core.ErrorLevel, "error message")

	if len(h.records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(h.records))
	}
	if h.records[0].Level != slog.LevelError || h.records[0].Message != "error message" {
		t.Errorf("Unexpected record: %v %q", h.records[0].Level, h.records[0].Message)
	}
}
