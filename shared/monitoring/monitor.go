package monitoring

import (
	"fmt"
	"log"
	"time"
)

// Monitor tracks the outcome of the most recent pipeline run. It backs the
// health endpoints and keeps no history beyond the last run.
type Monitor struct {
	lastRunSuccess bool
	lastRunTime    time.Time
	lastSummary    string
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()
	m.lastSummary = summary

	log.Printf("Run completed successfully - %s (took %v)", summary, duration)
}

func (m *Monitor) RecordPartialFailure(err error, duration time.Duration) {
	// Partial failures don't flip health: the run still produced output
	log.Printf("PARTIAL FAILURE: %s (took %v)", err.Error(), duration)
}

func (m *Monitor) RecordCriticalFailure(err error, duration time.Duration) {
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()
	m.lastSummary = err.Error()

	log.Printf("CRITICAL FAILURE: %s (took %v)", err.Error(), duration)
}

func (m *Monitor) IsHealthy() bool {
	if m.lastRunTime.IsZero() {
		return true // No runs yet, assume healthy
	}
	return m.lastRunSuccess
}

// Status is the JSON shape served by the /status endpoint.
type Status struct {
	Healthy     bool   `json:"healthy"`
	LastRunTime string `json:"last_run_time,omitempty"`
	LastSummary string `json:"last_summary,omitempty"`
}

func (m *Monitor) Status() Status {
	s := Status{
		Healthy:     m.IsHealthy(),
		LastSummary: m.lastSummary,
	}
	if !m.lastRunTime.IsZero() {
		s.LastRunTime = m.lastRunTime.Format(time.RFC3339)
	}
	return s
}

func (m *Monitor) GetStatusSummary() string {
	if m.lastRunTime.IsZero() {
		return "No runs yet"
	}

	if m.lastRunSuccess {
		return fmt.Sprintf("Last run %s: %s", m.lastRunTime.Format("Jan 2 15:04"), m.lastSummary)
	}
	return fmt.Sprintf("Last run failed %s: %s", m.lastRunTime.Format("Jan 2 15:04"), m.lastSummary)
}
