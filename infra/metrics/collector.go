package metrics

import (
	"context"
	"sync"

	coremetrics "github.com/AayushY02/Parking-MapAI/core/metrics"
	"github.com/AayushY02/Parking-MapAI/infra/logger"
	"github.com/AayushY02/Parking-MapAI/internal/eventbus"
)

// StartEventCollector subscribes to the bus and records every snapshot event
// on sink. It stops when the context is canceled or the bus is closed; the
// returned WaitGroup is released once the subscriber has drained.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus[coremetrics.SnapshotEvent], sink coremetrics.SnapshotRecorder, buffer int) *sync.WaitGroup {
	var wg sync.WaitGroup
	if bus == nil || sink == nil {
		return &wg
	}
	log := logger.New("metrics-collector")
	sub := bus.SubscribeBuffered(buffer)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := sink.RecordSnapshot(ev); err != nil {
					log.Warnf("record snapshot %s/%d: %v", ev.Scenario, ev.TimeIndex, err)
				}
			}
		}
	}()
	return &wg
}
