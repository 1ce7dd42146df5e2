// Package core defines the shared types used across qlog.
//
// It provides the Level type for severity filtering, caller capture
// helpers used to build call-site prefixes, and CheckTemplate, which
// validates printf-style templates against their argument count before
// a message reaches an engine.
//
// Levels are ordered Trace < Debug < Info < Warn < Error < Critical,
// followed by the Off sentinel. Ranks outside that range are clamped
// with Level.Clamp rather than rejected.
package core
