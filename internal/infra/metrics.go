package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	alertsReceived  atomic.Uint64
	alertsRejected  atomic.Uint64
	ordersSubmitted atomic.Uint64
	exchangeErrors  atomic.Uint64

	// Outbound order latency tracking
	latencySumNs atomic.Int64
	latencyCount atomic.Uint64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordAlert records an inbound alert.
func (m *Metrics) RecordAlert() {
	m.alertsReceived.Add(1)
}

// RecordRejected records an alert rejected before any outbound call.
func (m *Metrics) RecordRejected() {
	m.alertsRejected.Add(1)
}

// RecordOrder records a submitted order with its round-trip latency.
func (m *Metrics) RecordOrder(latencyNs int64) {
	m.ordersSubmitted.Add(1)
	m.latencySumNs.Add(latencyNs)
	m.latencyCount.Add(1)
}

// RecordExchangeError records a failed or refused exchange call.
func (m *Metrics) RecordExchangeError() {
	m.exchangeErrors.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	AlertsReceived  uint64    `json:"alerts_received"`
	AlertsRejected  uint64    `json:"alerts_rejected"`
	OrdersSubmitted uint64    `json:"orders_submitted"`
	ExchangeErrors  uint64    `json:"exchange_errors"`
	AvgLatencyNs    int64     `json:"avg_latency_ns"`
	Timestamp       time.Time `json:"timestamp"`
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgLatency int64
	count := m.latencyCount.Load()
	if count > 0 {
		avgLatency = m.latencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		AlertsReceived:  m.alertsReceived.Load(),
		AlertsRejected:  m.alertsRejected.Load(),
		OrdersSubmitted: m.ordersSubmitted.Load(),
		ExchangeErrors:  m.exchangeErrors.Load(),
		AvgLatencyNs:    avgLatency,
		Timestamp:       time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.alertsReceived.Store(0)
	m.alertsRejected.Store(0)
	m.ordersSubmitted.Store(0)
	m.exchangeErrors.Store(0)
	m.latencySumNs.Store(0)
	m.latencyCount.Store(0)
}
