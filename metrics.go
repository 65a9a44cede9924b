package qregister

import "sync"

// Metrics counts the work a register has dispatched.
type Metrics struct {
	mu      sync.RWMutex
	sweeps  uint64
	gateOps uint64
}

// MetricsSnapshot is a point-in-time copy of the counters, safe to
// read while the register keeps working.
type MetricsSnapshot struct {
	Sweeps  uint64 // parFor/parForSkip/parForMask sweeps started; norm and probability reductions are not counted
	GateOps uint64 // 2x2 kernel applications
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordSweep() {
	m.mu.Lock()
	m.sweeps++
	m.mu.Unlock()
}

func (m *Metrics) recordGate() {
	m.mu.Lock()
	m.gateOps++
	m.mu.Unlock()
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MetricsSnapshot{Sweeps: m.sweeps, GateOps: m.gateOps}
}
