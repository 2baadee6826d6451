package metrics

import (
	"time"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/report"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
)

// SnapshotEvent is the aggregate of one (slot, scenario) snapshot.
type SnapshotEvent struct {
	RunID     string
	Scenario  model.ScenarioID
	TimeIndex int
	Slot      string
	Impact    report.Impact
	FlowCount int
	Time      time.Time
}

// NewSnapshotEvent summarizes s for recording.
func NewSnapshotEvent(runID string, s simulation.Snapshot, at time.Time) SnapshotEvent {
	return SnapshotEvent{
		RunID:     runID,
		Scenario:  s.Scenario,
		TimeIndex: s.TimeIndex,
		Slot:      s.Slot,
		Impact:    s.Impact,
		FlowCount: len(s.Flows),
		Time:      at,
	}
}

// SnapshotRecorder records snapshot aggregates for observability purposes.
type SnapshotRecorder interface {
	RecordSnapshot(ev SnapshotEvent) error
}

// SweepEvent captures one completed sweep over every slot and scenario.
type SweepEvent struct {
	RunID     string
	Snapshots int
	Duration  time.Duration
	Time      time.Time
}

// SweepRecorder records sweep timings.
type SweepRecorder interface {
	RecordSweep(ev SweepEvent) error
}

// NopSink implements every recorder with no-op methods.
type NopSink struct{}

func (NopSink) RecordSnapshot(SnapshotEvent) error { return nil }
func (NopSink) RecordSweep(SweepEvent) error       { return nil }
