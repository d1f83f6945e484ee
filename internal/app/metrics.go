package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what a session did. All methods are safe for
// concurrent use; the config watcher and the editor goroutine both
// record.
type Metrics struct {
	startTime time.Time

	opens        atomic.Uint64
	saves        atomic.Uint64
	reloads      atomic.Uint64
	pluginEvents atomic.Uint64
}

// NewMetrics creates a metrics tracker starting now.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordOpen counts a document opened from disk.
func (m *Metrics) RecordOpen() { m.opens.Add(1) }

// RecordSave counts a successful save.
func (m *Metrics) RecordSave() { m.saves.Add(1) }

// RecordReload counts a live configuration reload.
func (m *Metrics) RecordReload() { m.reloads.Add(1) }

// RecordPluginEvent counts one event dispatched to the plugin host.
func (m *Metrics) RecordPluginEvent() { m.pluginEvents.Add(1) }

// Snapshot returns a point-in-time view of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		Opens:        m.opens.Load(),
		Saves:        m.saves.Load(),
		Reloads:      m.reloads.Load(),
		PluginEvents: m.pluginEvents.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of session counters.
type MetricsSnapshot struct {
	Uptime       time.Duration
	Opens        uint64
	Saves        uint64
	Reloads      uint64
	PluginEvents uint64
}

// Timer measures elapsed time for log lines.
type Timer struct {
	start time.Time
}

// StartTimer creates a running timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// ElapsedMs returns the elapsed time in milliseconds.
func (t *Timer) ElapsedMs() float64 {
	return float64(t.Elapsed().Nanoseconds()) / 1e6
}
