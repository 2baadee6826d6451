// Package runlog defines the record of computed sweeps and the store
// interface used to persist and query it.
package runlog

import (
	"context"
	"time"

	"github.com/AayushY02/Parking-MapAI/core/metrics"
	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/report"
)

// Record captures the impact of one (slot, scenario) snapshot in a run.
type Record struct {
	RunID     string           `json:"run_id"`
	Timestamp time.Time        `json:"timestamp"`
	Scenario  model.ScenarioID `json:"scenario"`
	TimeIndex int              `json:"time_index"`
	Slot      string           `json:"slot"`
	FlowCount int              `json:"flow_count"`
	Impact    report.Impact    `json:"impact"`
}

// FromEvent converts a snapshot event into a record.
func FromEvent(ev metrics.SnapshotEvent) Record {
	return Record{
		RunID:     ev.RunID,
		Timestamp: ev.Time,
		Scenario:  ev.Scenario,
		TimeIndex: ev.TimeIndex,
		Slot:      ev.Slot,
		FlowCount: ev.FlowCount,
		Impact:    ev.Impact,
	}
}

// Query defines filters for retrieving records. Scenario matches the
// scenario's display name, so "baseline" selects the unadjusted snapshots.
type Query struct {
	RunID    string
	Scenario string
	Start    time.Time
	End      time.Time
	Limit    int
}

// Match reports whether r satisfies every filter except Limit.
func (q Query) Match(r Record) bool {
	if q.RunID != "" && r.RunID != q.RunID {
		return false
	}
	if q.Scenario != "" && r.Scenario.String() != q.Scenario {
		return false
	}
	if !q.Start.IsZero() && r.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && r.Timestamp.After(q.End) {
		return false
	}
	return true
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, recs ...Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}
