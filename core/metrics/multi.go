package metrics

import "errors"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []SnapshotRecorder
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...SnapshotRecorder) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSnapshot forwards the event to every sink. A failing sink does not
// stop the others; all errors are joined.
func (m *MultiSink) RecordSnapshot(ev SnapshotEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordSnapshot(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordSweep forwards sweep events to the sinks that support them.
func (m *MultiSink) RecordSweep(ev SweepEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if rec, ok := s.(SweepRecorder); ok {
			if err := rec.RecordSweep(ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
