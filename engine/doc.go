// Package engine defines the Engine interface that connects the qlog
// facade to a concrete logging backend, plus a few backend-agnostic
// building blocks.
//
// The facade does the template formatting and call-site decoration; an
// Engine receives a finished message and a Level and decides whether and
// where to write it. Adapters live in sub-packages:
//
//   - zapengine wraps go.uber.org/zap (the default).
//   - zerologengine wraps github.com/rs/zerolog.
//   - logrusengine wraps github.com/sirupsen/logrus.
//   - slogengine wraps any log/slog Handler.
//
// MultiEngine fans a message out to several engines and aggregates
// their Sync and Close errors; config.Build uses it for extra outputs. CountingEngine records how many messages
// were written per level using atomic counters.
package engine
