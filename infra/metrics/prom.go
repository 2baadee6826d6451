package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/AayushY02/Parking-MapAI/core/metrics"
)

var snapshotLabels = []string{"scenario", "slot"}

// PromSink exposes the latest snapshot figures as Prometheus gauges.
type PromSink struct {
	density   *prometheus.GaugeVec
	peak      *prometheus.GaugeVec
	occupancy *prometheus.GaugeVec
	price     *prometheus.GaugeVec
	flows     *prometheus.GaugeVec
	drop      *prometheus.GaugeVec
	snapshots *prometheus.CounterVec
	sweeps    prometheus.Histogram
}

// NewPromSink registers snapshot metrics on the default Prometheus registerer.
// The HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		density:   gaugeVec("mapai_mesh_density_avg", "Average mesh cell count after the scenario transform"),
		peak:      gaugeVec("mapai_mesh_density_peak", "Peak mesh cell count after the scenario transform"),
		occupancy: gaugeVec("mapai_parking_occupancy_percent", "Average parking occupancy after the scenario transform"),
		price:     gaugeVec("mapai_parking_price_yen", "Average parking price after the scenario transform"),
		flows:     gaugeVec("mapai_flow_lines", "Number of flow lines drawn for the snapshot"),
		drop:      gaugeVec("mapai_peak_drop_percent", "Peak density reduction relative to baseline"),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mapai_snapshots_total",
			Help: "Total number of snapshots recorded",
		}, []string{"scenario"}),
		sweeps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mapai_sweep_duration_seconds",
			Help:    "Time taken to compute every slot and scenario",
			Buckets: prometheus.DefBuckets,
		}),
	}
	for _, g := range []**prometheus.GaugeVec{&s.density, &s.peak, &s.occupancy, &s.price, &s.flows, &s.drop} {
		existing, err := register(reg, *g)
		if err != nil {
			return nil, err
		}
		*g = existing.(*prometheus.GaugeVec)
	}
	c, err := register(reg, s.snapshots)
	if err != nil {
		return nil, err
	}
	s.snapshots = c.(*prometheus.CounterVec)
	h, err := register(reg, s.sweeps)
	if err != nil {
		return nil, err
	}
	s.sweeps = h.(prometheus.Histogram)
	return s, nil
}

func gaugeVec(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: name, Help: help}, snapshotLabels)
}

// register returns the collector already registered under the same
// descriptor when there is one.
func register(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector, nil
		}
		return nil, err
	}
	return c, nil
}

// RecordSnapshot sets the gauges for the event's scenario and slot.
func (s *PromSink) RecordSnapshot(ev coremetrics.SnapshotEvent) error {
	labels := []string{ev.Scenario.String(), slotLabel(ev)}
	s.density.WithLabelValues(labels...).Set(float64(ev.Impact.AvgAfter))
	s.peak.WithLabelValues(labels...).Set(float64(ev.Impact.PeakAfter))
	s.occupancy.WithLabelValues(labels...).Set(float64(ev.Impact.OccupancyAfter))
	s.price.WithLabelValues(labels...).Set(float64(ev.Impact.PriceAfter))
	s.flows.WithLabelValues(labels...).Set(float64(ev.FlowCount))
	s.drop.WithLabelValues(labels...).Set(float64(ev.Impact.PeakDropPct))
	s.snapshots.WithLabelValues(ev.Scenario.String()).Inc()
	return nil
}

// RecordSweep observes the sweep duration.
func (s *PromSink) RecordSweep(ev coremetrics.SweepEvent) error {
	s.sweeps.Observe(ev.Duration.Seconds())
	return nil
}

func slotLabel(ev coremetrics.SnapshotEvent) string {
	if ev.Slot != "" {
		return ev.Slot
	}
	return strconv.Itoa(ev.TimeIndex)
}
