// Package config loads qlog's configuration and builds the engine it
// describes.
//
// Configuration is layered with koanf:
//
//  1. Defaults: zap engine, console format, stderr, level info, strict templates
//  2. Config file: YAML at $QLOG_CONFIG, or qlog.yaml / qlog.yml in the
//     working directory
//  3. Environment variables: QLOG_LEVEL, QLOG_ENGINE, QLOG_FORMAT,
//     QLOG_OUTPUT, QLOG_OUTPUTS (comma separated), QLOG_STRICT
//
// Example qlog.yaml:
//
//	level: debug
//	engine: zerolog
//	format: json
//	output: stderr
//	outputs:
//	  - /var/log/app.log
//
// Build turns a Config into an engine.Engine with its threshold already
// applied. Extra outputs get an engine each, fanned out through
// engine.MultiEngine.
package config
