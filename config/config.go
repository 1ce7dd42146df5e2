package config

import (
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/engine"
	"github.com/philipp01105/qlog/engine/logrusengine"
	"github.com/philipp01105/qlog/engine/slogengine"
	"github.com/philipp01105/qlog/engine/zapengine"
	"github.com/philipp01105/qlog/engine/zerologengine"
)

// Supported engine names
const (
	EngineZap     = "zap"
	EngineZerolog = "zerolog"
	EngineLogrus  = "logrus"
	EngineSlog    = "slog"
)

// Supported output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ConfigPathEnvVar overrides the config file location
const ConfigPathEnvVar = "QLOG_CONFIG"

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "QLOG_"

// DefaultConfigPaths lists the files searched, in order, when
// ConfigPathEnvVar is unset.
var DefaultConfigPaths = []string{
	"qlog.yaml",
	"qlog.yml",
}

// Config holds the facade configuration
type Config struct {
	// Level is the initial threshold: trace, debug, info, warn, error, critical, off
	Level string `koanf:"level"`
	// Engine selects the backend: zap, zerolog, logrus, slog
	Engine string `koanf:"engine"`
	// Format is console or json
	Format string `koanf:"format"`
	// Output is stderr, stdout, or a file path
	Output string `koanf:"output"`
	// Outputs are extra destinations written alongside Output
	Outputs []string `koanf:"outputs"`
	// Strict makes template/argument mismatches panic
	Strict bool `koanf:"strict"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Level:  "info",
		Engine: EngineZap,
		Format: FormatConsole,
		Output: "stderr",
		Strict: true,
	}
}

// Load reads the configuration from defaults, the config file found by
// findConfigFile, and QLOG_* environment variables, in increasing order
// of precedence.
func Load() (Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit config file. An empty path skips the
// file layer.
func LoadFile(path string) (Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(structs.Provider(&defaults, "koanf"), nil); err != nil {
		return defaults, errors.Wrap(err, "failed to load defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return defaults, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValueFunc), nil); err != nil {
		return defaults, errors.Wrap(err, "failed to load environment variables")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return defaults, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return defaults, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

// envTransformFunc maps QLOG_LEVEL to level, QLOG_ENGINE to engine, etc.
func envTransformFunc(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
}

// envValueFunc applies envTransformFunc and splits QLOG_OUTPUTS on commas
func envValueFunc(key, value string) (string, any) {
	key = envTransformFunc(key)
	if key == "outputs" {
		var outputs []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				outputs = append(outputs, o)
			}
		}
		return key, outputs
	}
	return key, value
}

// findConfigFile returns the first config file found, or "" if none exists
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		return envPath
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Validate checks every field
func (c Config) Validate() error {
	if _, err := core.ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Engine {
	case EngineZap, EngineZerolog, EngineLogrus, EngineSlog:
	default:
		return errors.Errorf("unknown engine %q", c.Engine)
	}
	switch c.Format {
	case FormatConsole, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output must not be empty")
	}
	for i, o := range c.Outputs {
		if strings.TrimSpace(o) == "" {
			return errors.Errorf("outputs[%d] must not be empty", i)
		}
	}
	return nil
}

// LogLevel returns the parsed Level, or InfoLevel if Level is invalid
func (c Config) LogLevel() core.Level {
	level, _ := core.ParseLevel(c.Level)
	return level
}

// Build constructs the engine described by c, with its threshold set to
// c.Level. When Outputs is set, one engine is built per destination and
// they are combined in an engine.MultiEngine.
func Build(c Config) (engine.Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	outputs := append([]string{c.Output}, c.Outputs...)
	engines := make([]engine.Engine, 0, len(outputs))
	for _, output := range outputs {
		e, err := buildOutput(c, output)
		if err != nil {
			for _, built := range engines {
				err = multierr.Append(err, built.Close())
			}
			return nil, err
		}
		engines = append(engines, e)
	}

	var e engine.Engine = engines[0]
	if len(engines) > 1 {
		e = engine.NewMultiEngine(engines...)
	}
	e.SetLevel(c.LogLevel())
	return e, nil
}

// buildOutput constructs a single engine of kind c.Engine writing to output
func buildOutput(c Config, output string) (engine.Engine, error) {
	if c.Engine == EngineZap {
		ze, err := zapengine.New(zapengine.Config{Format: c.Format, OutputPaths: []string{output}})
		if err != nil {
			return nil, err
		}
		return ze, nil
	}

	w, closer, err := openOutput(output)
	if err != nil {
		return nil, err
	}
	switch c.Engine {
	case EngineZerolog:
		return zerologengine.New(zerologengine.Config{Writer: w, Format: c.Format, Closer: closer}), nil
	case EngineLogrus:
		return logrusengine.New(logrusengine.Config{Writer: w, Format: c.Format, Closer: closer}), nil
	default:
		return slogengine.New(slogengine.Config{Writer: w, Format: c.Format, Closer: closer}), nil
	}
}

// openOutput resolves stderr/stdout or opens output as an append-only file.
// The returned Closer is nil for the standard streams.
func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "stderr":
		return os.Stderr, nil, nil
	case "stdout":
		return os.Stdout, nil, nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open log output %s", output)
	}
	return f, f, nil
}
