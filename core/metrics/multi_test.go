package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	snapshots int
	sweeps    int
	err       error
}

func (r *recordSink) RecordSnapshot(SnapshotEvent) error {
	r.snapshots++
	return r.err
}

func (r *recordSink) RecordSweep(SweepEvent) error {
	r.sweeps++
	return nil
}

type snapshotOnly struct{ count int }

func (s *snapshotOnly) RecordSnapshot(SnapshotEvent) error {
	s.count++
	return nil
}

// TestMultiSink ensures events are forwarded to all sinks.
func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &snapshotOnly{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordSnapshot(SnapshotEvent{Slot: "13:00"}); err != nil {
		t.Fatalf("record snapshot: %v", err)
	}
	if err := m.RecordSweep(SweepEvent{Snapshots: 60}); err != nil {
		t.Fatalf("record sweep: %v", err)
	}
	if s1.snapshots != 1 || s1.sweeps != 1 || s2.count != 1 {
		t.Fatalf("events not forwarded: %+v %+v", s1, s2)
	}
}

func TestMultiSinkContinuesPastError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordSnapshot(SnapshotEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s2.snapshots != 1 {
		t.Fatalf("second sink should still receive the event, got %d", s2.snapshots)
	}
}

func TestMultiSinkJoinsErrors(t *testing.T) {
	e1, e2 := errors.New("influx down"), errors.New("prom down")
	m := NewMultiSink(&recordSink{err: e1}, &recordSink{err: e2})
	err := m.RecordSnapshot(SnapshotEvent{})
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("expected both errors joined, got %v", err)
	}
}
