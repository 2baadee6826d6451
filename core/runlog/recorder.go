package runlog

import (
	"context"
	"time"

	"github.com/AayushY02/Parking-MapAI/core/metrics"
)

// Recorder adapts a Store to the metrics.SnapshotRecorder interface so the
// run log can sit behind the event collector like any other sink.
type Recorder struct {
	Store   Store
	Timeout time.Duration
}

var _ metrics.SnapshotRecorder = Recorder{}

// RecordSnapshot appends the event as a record.
func (r Recorder) RecordSnapshot(ev metrics.SnapshotEvent) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Store.Append(ctx, FromEvent(ev))
}
