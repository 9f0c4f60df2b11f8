// Package observability aggregates live gauges and counters for the
// stats endpoint and the periodic self-stats log line.
package observability

import "sync/atomic"

// MonitorStats is the JSON snapshot served by GET /stats.
type MonitorStats struct {
	Connections     int64  `json:"connections"`
	ActiveSessions  int64  `json:"active_sessions"`
	SessionsCreated uint64 `json:"sessions_created"`
	SessionsEnded   uint64 `json:"sessions_ended"`
	SessionsEvicted uint64 `json:"sessions_evicted"`
	EventsDelivered uint64 `json:"events_delivered"`
	EventsDropped   uint64 `json:"events_dropped"`
	CommandsDropped uint64 `json:"commands_dropped"`
	RecordsDropped  uint64 `json:"records_dropped"`
}

// Monitor holds atomic counters updated on the hot path.
// Cheap enough to call from the coordinator loop without batching.
type Monitor struct {
	connections     atomic.Int64
	activeSessions  atomic.Int64
	sessionsCreated atomic.Uint64
	sessionsEnded   atomic.Uint64
	sessionsEvicted atomic.Uint64
	eventsDelivered atomic.Uint64
	eventsDropped   atomic.Uint64
	commandsDropped atomic.Uint64
	recordsDropped  atomic.Uint64
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) SetConnections(n int) { m.connections.Store(int64(n)) }
func (m *Monitor) IncrActiveSessions()  { m.activeSessions.Add(1) }
func (m *Monitor) DecrActiveSessions()  { m.activeSessions.Add(-1) }
func (m *Monitor) IncrSessionsCreated() { m.sessionsCreated.Add(1) }
func (m *Monitor) IncrSessionsEnded()   { m.sessionsEnded.Add(1) }
func (m *Monitor) IncrSessionsEvicted() { m.sessionsEvicted.Add(1) }
func (m *Monitor) IncrEventsDelivered() { m.eventsDelivered.Add(1) }
func (m *Monitor) IncrEventsDropped()   { m.eventsDropped.Add(1) }
func (m *Monitor) IncrCommandsDropped() { m.commandsDropped.Add(1) }
func (m *Monitor) IncrRecordsDropped()  { m.recordsDropped.Add(1) }

func (m *Monitor) Snapshot() MonitorStats {
	return MonitorStats{
		Connections:     m.connections.Load(),
		ActiveSessions:  m.activeSessions.Load(),
		SessionsCreated: m.sessionsCreated.Load(),
		SessionsEnded:   m.sessionsEnded.Load(),
		SessionsEvicted: m.sessionsEvicted.Load(),
		EventsDelivered: m.eventsDelivered.Load(),
		EventsDropped:   m.eventsDropped.Load(),
		CommandsDropped: m.commandsDropped.Load(),
		RecordsDropped:  m.recordsDropped.Load(),
	}
}
