package engine

import (
	"sync/atomic"

	"github.com/philipp01105/qlog/core"
)

// Stats tracks how many messages were written per level
type Stats struct {
	emitted [core.OffLevel]uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEmitted atomically increments the counter for a level
func (s *Stats) IncrementEmitted(level core.Level) {
	if level < core.TraceLevel || level >= core.OffLevel {
		return
	}
	atomic.AddUint64(&s.emitted[level], 1)
}

// GetEmitted returns the emitted count for a level
func (s *Stats) GetEmitted(level core.Level) uint64 {
	if level < core.TraceLevel || level >= core.OffLevel {
		return 0
	}
	return atomic.LoadUint64(&s.emitted[level])
}

// GetTotal returns the total emitted across all levels
func (s *Stats) GetTotal() uint64 {
	var total uint64
	for i := range s.emitted {
		total += atomic.LoadUint64(&s.emitted[i])
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.emitted {
		atomic.StoreUint64(&s.emitted[i], 0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Emitted map[core.Level]uint64
	Total   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{Emitted: make(map[core.Level]uint64, len(s.emitted))}
	for lvl := core.TraceLevel; lvl < core.OffLevel; lvl++ {
		n := s.GetEmitted(lvl)
		snap.Emitted[lvl] = n
		snap.Total += n
	}
	return snap
}

// CountingEngine wraps an Engine and counts the messages it writes
type CountingEngine struct {
	Engine
	stats *Stats
}

// NewCountingEngine wraps e with per-level counters
func NewCountingEngine(e Engine) *CountingEngine {
	return &CountingEngine{Engine: e, stats: NewStats()}
}

// Log counts the message and forwards it when the wrapped engine accepts the level
func (c *CountingEngine) Log(level core.Level, msg string) {
	if !c.Engine.Enabled(level) {
		return
	}
	c.stats.IncrementEmitted(level)
	c.Engine.Log(level, msg)
}

// Stats returns a snapshot of the current counters
func (c *CountingEngine) Stats() Snapshot {
	return c.stats.GetSnapshot()
}
