package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/AayushY02/Parking-MapAI/core/metrics"
	"github.com/AayushY02/Parking-MapAI/infra/logger"
)

// InfluxSink writes snapshot aggregates to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.SnapshotRecorder {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSnapshot writes one mapai_snapshot point.
func (s *InfluxSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.writeAPI.WritePoint(ctx, snapshotPoint(ev))
}

// RecordSweep writes one mapai_sweep point.
func (s *InfluxSink) RecordSweep(ev coremetrics.SweepEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("mapai_sweep").
		AddTag("run_id", ev.RunID).
		AddField("snapshots", ev.Snapshots).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }

func snapshotPoint(ev coremetrics.SnapshotEvent) *write.Point {
	im := ev.Impact
	p := write.NewPointWithMeasurement("mapai_snapshot").
		AddTag("scenario", ev.Scenario.String()).
		AddTag("slot", slotLabel(ev))
	if ev.RunID != "" {
		p = p.AddTag("run_id", ev.RunID)
	}
	return p.AddField("avg_before", im.AvgBefore).
		AddField("avg_after", im.AvgAfter).
		AddField("peak_before", im.PeakBefore).
		AddField("peak_after", im.PeakAfter).
		AddField("occupancy_before", im.OccupancyBefore).
		AddField("occupancy_after", im.OccupancyAfter).
		AddField("price_before", im.PriceBefore).
		AddField("price_after", im.PriceAfter).
		AddField("peak_drop_pct", im.PeakDropPct).
		AddField("flows", ev.FlowCount).
		SetTime(ev.Time)
}
