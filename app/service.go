// Package app wires the simulation engine to the metrics sinks, the run log
// and the MQTT publisher.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AayushY02/Parking-MapAI/config"
	coremetrics "github.com/AayushY02/Parking-MapAI/core/metrics"
	coremqtt "github.com/AayushY02/Parking-MapAI/core/mqtt"
	"github.com/AayushY02/Parking-MapAI/core/runlog"
	"github.com/AayushY02/Parking-MapAI/core/scenario"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
	"github.com/AayushY02/Parking-MapAI/core/timeline"
	"github.com/AayushY02/Parking-MapAI/infra/logger"
	"github.com/AayushY02/Parking-MapAI/infra/metrics"
	"github.com/AayushY02/Parking-MapAI/infra/mqtt"
	infrarunlog "github.com/AayushY02/Parking-MapAI/infra/runlog"
	"github.com/AayushY02/Parking-MapAI/internal/eventbus"
)

// Option overrides a dependency that New would otherwise build from config.
type Option func(*Service)

// WithSink replaces the configured metrics sink.
func WithSink(s coremetrics.SnapshotRecorder) Option { return func(svc *Service) { svc.sink = s } }

// WithStore replaces the configured run-log store.
func WithStore(s runlog.Store) Option {
	return func(svc *Service) { svc.store = s; svc.storeSet = true }
}

// WithPublisher replaces the configured MQTT publisher.
func WithPublisher(p coremqtt.Publisher) Option {
	return func(svc *Service) { svc.publisher = p; svc.publisherSet = true }
}

// WithLogger sets the service logger.
func WithLogger(l logger.Logger) Option { return func(svc *Service) { svc.log = l } }

// SweepResult summarizes one sweep.
type SweepResult struct {
	RunID     string
	Snapshots []simulation.Snapshot
	Published int
	Duration  time.Duration
}

// Service orchestrates the engine, event bus, sinks, run log and publisher.
type Service struct {
	Engine *simulation.Engine

	cfg          *config.Config
	bus          *eventbus.TypedBus[coremetrics.SnapshotEvent]
	sink         coremetrics.SnapshotRecorder
	store        runlog.Store
	storeSet     bool
	publisher    coremqtt.Publisher
	publisherSet bool
	log          logger.Logger
	now          func() time.Time

	startOnce sync.Once
	collector *sync.WaitGroup
	closeOnce sync.Once
}

// New creates a Service from the configuration.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	base, err := simulation.NewBaseline(simulation.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}
	svc := &Service{
		Engine: simulation.NewEngine(base),
		cfg:    cfg,
		bus:    eventbus.NewTyped[coremetrics.SnapshotEvent](),
		log:    logger.New("service"),
		now:    time.Now,
	}
	for _, o := range opts {
		o(svc)
	}
	if svc.sink == nil {
		sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
		if err != nil {
			return nil, fmt.Errorf("metrics sink: %w", err)
		}
		svc.sink = sink
	}
	if !svc.storeSet {
		store, err := infrarunlog.Open(cfg.Logging.RunLog)
		if err != nil {
			return nil, err
		}
		svc.store = store
	}
	if !svc.publisherSet && cfg.MQTT.Enabled {
		client, err := mqtt.NewPahoClient(cfg.MQTT)
		if err != nil {
			_ = svc.closeStore()
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		svc.publisher = client
	}
	return svc, nil
}

// Start launches the event collector. It is idempotent.
func (s *Service) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		rec := s.sink
		if s.store != nil {
			rec = coremetrics.NewMultiSink(s.sink, runlog.Recorder{Store: s.store})
		}
		buffer := len(simulation.Scenarios()) * timeline.SlotCount
		s.collector = metrics.StartEventCollector(ctx, s.bus, rec, buffer)
	})
}

// Snapshot returns the memoized snapshot at (ti, id).
func (s *Service) Snapshot(ti int, id string) (simulation.Snapshot, error) {
	sid, err := scenario.Parse(id)
	if err != nil {
		return simulation.Snapshot{}, err
	}
	return s.Engine.Snapshot(ti, sid)
}

// Sweep computes every slot and scenario, emits one event per snapshot to
// the collector and publishes the snapshots when a publisher is configured.
// Publish failures are logged and do not fail the sweep.
func (s *Service) Sweep(ctx context.Context) (SweepResult, error) {
	s.Start(ctx)
	started := s.now()
	snaps, err := s.Engine.Sweep(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("sweep: %w", err)
	}
	res := SweepResult{RunID: uuid.NewString(), Snapshots: snaps}
	at := s.now()
	for _, snap := range snaps {
		s.bus.Publish(coremetrics.NewSnapshotEvent(res.RunID, snap, at))
		if s.publisher == nil {
			continue
		}
		if err := s.publisher.PublishSnapshot(res.RunID, snap); err != nil {
			s.log.Warnf("publish %s/%s: %v", snap.Scenario, snap.Slot, err)
			continue
		}
		res.Published++
	}
	res.Duration = s.now().Sub(started)
	if rec, ok := s.sink.(coremetrics.SweepRecorder); ok {
		if err := rec.RecordSweep(coremetrics.SweepEvent{
			RunID:     res.RunID,
			Snapshots: len(snaps),
			Duration:  res.Duration,
			Time:      at,
		}); err != nil {
			s.log.Warnf("record sweep: %v", err)
		}
	}
	s.log.With(map[string]any{
		"run_id":    res.RunID,
		"snapshots": len(snaps),
		"published": res.Published,
	}).Infof("sweep finished in %s", res.Duration)
	if dropped := s.bus.Dropped(); dropped > 0 {
		s.log.Warnf("%d snapshot events dropped", dropped)
	}
	return res, nil
}

// Runs queries the run log.
func (s *Service) Runs(ctx context.Context, q runlog.Query) ([]runlog.Record, error) {
	if s.store == nil {
		return nil, errors.New("run log disabled")
	}
	return s.store.Query(ctx, q)
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	s.Start(ctx)
	if s.cfg.Run.SweepEnabled() {
		if _, err := s.Sweep(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		if err := metrics.StartPromServer(ctx, addr); err != nil {
			return fmt.Errorf("prom server: %w", err)
		}
		return nil
	}
	<-ctx.Done()
	return nil
}

// Close drains the collector and releases the store and publisher.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.bus.Close()
		if s.collector != nil {
			s.collector.Wait()
		}
		if s.publisher != nil {
			s.publisher.Disconnect()
		}
		err = s.closeStore()
	})
	return err
}

func (s *Service) closeStore() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
