package app

import (
	"testing"
	"time"
)

func TestMetricsZeroSnapshot(t *testing.T) {
	m := NewMetrics()

	snap := m.Snapshot()
	if snap.Opens != 0 || snap.Saves != 0 || snap.Reloads != 0 || snap.PluginEvents != 0 {
		t.Errorf("fresh snapshot = %+v, want all counters zero", snap)
	}
	if snap.Uptime < 0 {
		t.Errorf("Uptime = %v, want >= 0", snap.Uptime)
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordOpen()
	m.RecordSave()
	m.RecordSave()
	m.RecordReload()
	m.RecordPluginEvent()
	m.RecordPluginEvent()
	m.RecordPluginEvent()

	snap := m.Snapshot()
	if snap.Opens != 1 {
		t.Errorf("Opens = %d, want 1", snap.Opens)
	}
	if snap.Saves != 2 {
		t.Errorf("Saves = %d, want 2", snap.Saves)
	}
	if snap.Reloads != 1 {
		t.Errorf("Reloads = %d, want 1", snap.Reloads)
	}
	if snap.PluginEvents != 3 {
		t.Errorf("PluginEvents = %d, want 3", snap.PluginEvents)
	}
}

func TestMetricsConcurrent(t *testing.T) {
	m := NewMetrics()

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				m.RecordSave()
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	if got := m.Snapshot().Saves; got != 400 {
		t.Errorf("Saves = %d, want 400", got)
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)

	if got := timer.Elapsed(); got < 5*time.Millisecond {
		t.Errorf("Elapsed = %v, want >= 5ms", got)
	}
	if got := timer.ElapsedMs(); got < 5 {
		t.Errorf("ElapsedMs = %v, want >= 5", got)
	}
}
