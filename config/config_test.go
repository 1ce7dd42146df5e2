package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/engine"
)

// clearEnv isolates a test from QLOG_* variables set in the environment
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		if key, _, _ := strings.Cut(kv, "="); strings.HasPrefix(key, EnvPrefix) {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func sameConfig(a, b Config) bool {
	return a.Level == b.Level && a.Engine == b.Engine && a.Format == b.Format &&
		a.Output == b.Output && a.Strict == b.Strict && slices.Equal(a.Outputs, b.Outputs)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}
	if cfg.LogLevel() != core.InfoLevel {
		t.Errorf("Expected default level info, got %v", cfg.LogLevel())
	}
	if cfg.Engine != EngineZap || !cfg.Strict {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if !sameConfig(cfg, Default()) {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadFile_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "qlog.yaml", "level: debug\nengine: zerolog\nformat: json\nstrict: false\n")
	t.Setenv("QLOG_LEVEL", "warn")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Level != "warn" {
		t.Errorf("Expected env to override file level, got %q", cfg.Level)
	}
	if cfg.Engine != EngineZerolog || cfg.Format != FormatJSON {
		t.Errorf("Expected file values for engine and format, got %+v", cfg)
	}
	if cfg.Strict {
		t.Error("Expected file to disable strict mode")
	}
	if cfg.Output != "stderr" {
		t.Errorf("Expected default output, got %q", cfg.Output)
	}
}

func TestLoadFile_EnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("QLOG_STRICT", "false")
	t.Setenv("QLOG_ENGINE", "logrus")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Strict || cfg.Engine != EngineLogrus {
		t.Errorf("Expected env overrides, got %+v", cfg)
	}
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "custom.yaml", "engine: slog\n")
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine != EngineSlog {
		t.Errorf("Expected engine from %s, got %q", path, cfg.Engine)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "level: verbose\n"},
		{"bad engine", "engine: log4j\n"},
		{"bad format", "format: xml\n"},
		{"empty output", "output: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFile(writeFile(t, "qlog.yaml", tt.content))
			if err == nil {
				t.Fatalf("Expected validation error, got config %+v", cfg)
			}
			if !sameConfig(cfg, Default()) {
				t.Errorf("Expected defaults alongside the error, got %+v", cfg)
			}
		})
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestBuild_Engines(t *testing.T) {
	for _, name := range []string{EngineZap, EngineZerolog, EngineLogrus, EngineSlog} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.log")
			cfg := Default()
			cfg.Engine = name
			cfg.Format = FormatJSON
			cfg.Output = path
			cfg.Level = "warn"

			e, err := Build(cfg)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if e.Enabled(core.InfoLevel) {
				t.Error("Expected Build to apply the configured level")
			}

			e.Log(core.InfoLevel, "below threshold")
			e.Log(core.ErrorLevel, "disk is full")
			if err := e.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			output := string(data)
			if !strings.Contains(output, "disk is full") {
				t.Errorf("Expected error message in output, got: %s", output)
			}
			if strings.Contains(output, "below threshold") {
				t.Errorf("Info message was written at level warn: %s", output)
			}
		})
	}
}

func TestBuild_Invalid(t *testing.T) {
	cfg := Default()
	cfg.Engine = "log4j"
	if _, err := Build(cfg); err == nil {
		t.Error("Expected error for unknown engine")
	}

	cfg = Default()
	cfg.Engine = EngineLogrus
	cfg.Output = filepath.Join(t.TempDir(), "missing", "dir", "out.log")
	if _, err := Build(cfg); err == nil {
		t.Error("Expected error for unwritable output")
	}
}

func TestLoadFile_Outputs(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "qlog.yaml", "outputs:\n  - /tmp/a.log\n  - /tmp/b.log\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if want := []string{"/tmp/a.log", "/tmp/b.log"}; !slices.Equal(cfg.Outputs, want) {
		t.Errorf("Expected outputs %v from file, got %v", want, cfg.Outputs)
	}

	t.Setenv("QLOG_OUTPUTS", "stdout, /tmp/c.log,")
	cfg, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if want := []string{"stdout", "/tmp/c.log"}; !slices.Equal(cfg.Outputs, want) {
		t.Errorf("Expected outputs %v from environment, got %v", want, cfg.Outputs)
	}
}

func TestBuild_MultipleOutputs(t *testing.T) {
	for _, name := range []string{EngineZap, EngineZerolog, EngineLogrus, EngineSlog} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			first := filepath.Join(dir, "first.log")
			second := filepath.Join(dir, "second.log")

			cfg := Default()
			cfg.Engine = name
			cfg.Format = FormatJSON
			cfg.Output = first
			cfg.Outputs = []string{second}
			cfg.Level = "warn"

			e, err := Build(cfg)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if _, ok := e.(*engine.MultiEngine); !ok {
				t.Fatalf("Expected *engine.MultiEngine, got %T", e)
			}
			if e.Enabled(core.InfoLevel) {
				t.Error("Expected Build to apply the configured level to every output")
			}

			e.Log(core.ErrorLevel, "replica lagging")
			if err := e.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			for _, path := range []string{first, second} {
				data, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("ReadFile() error = %v", err)
				}
				if !strings.Contains(string(data), "replica lagging") {
					t.Errorf("Expected message in %s, got: %s", path, data)
				}
			}
		})
	}
}

func TestBuild_MultipleOutputsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Engine = EngineZerolog
	cfg.Output = filepath.Join(t.TempDir(), "ok.log")
	cfg.Outputs = []string{filepath.Join(t.TempDir(), "missing", "dir", "out.log")}
	if _, err := Build(cfg); err == nil {
		t.Error("Expected error for unwritable extra output")
	}

	cfg.Outputs = []string{" "}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for blank extra output")
	}
}
