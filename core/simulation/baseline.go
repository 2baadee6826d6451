// Package simulation derives display snapshots from the generated baseline.
// A Baseline is built once and only read afterwards; an Engine memoizes
// snapshots per (slot, scenario) and can sweep every pair concurrently.
package simulation

import (
	"errors"
	"fmt"

	"github.com/AayushY02/Parking-MapAI/core/mesh"
	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/parking"
	"github.com/AayushY02/Parking-MapAI/core/report"
	"github.com/AayushY02/Parking-MapAI/core/scenario"
	"github.com/AayushY02/Parking-MapAI/core/timeline"
)

var (
	// ErrTimeIndex is returned for a slot outside the simulated window.
	ErrTimeIndex = errors.New("time index out of range")
	// ErrUnknownScenario is returned for a non-empty id missing from the catalog.
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Config bundles the generator settings.
type Config struct {
	Mesh    mesh.Config
	Parking parking.Config
}

// DefaultConfig returns the default grid and inventory over the default window.
func DefaultConfig() Config {
	return Config{Mesh: mesh.DefaultConfig(), Parking: parking.DefaultConfig()}
}

// Baseline is the generated world before any scenario.
type Baseline struct {
	Slots   []string
	Weights []float64
	Cells   []model.Cell
	Lots    []model.ParkingLot
}

// NewBaseline generates the mesh and the inventory. Both share one weight
// series, taken from the mesh config when set.
func NewBaseline(cfg Config) (*Baseline, error) {
	if cfg.Mesh.Weights == nil {
		cfg.Mesh.Weights = timeline.Weights(timeline.SlotCount)
	}
	cfg.Parking.Weights = cfg.Mesh.Weights
	cfg.Mesh.SetDefaults()
	cfg.Parking.SetDefaults()

	cells, err := mesh.Generate(cfg.Mesh)
	if err != nil {
		return nil, fmt.Errorf("generate mesh: %w", err)
	}
	lots, err := parking.Generate(cfg.Parking)
	if err != nil {
		return nil, fmt.Errorf("generate parking: %w", err)
	}
	return &Baseline{
		Slots:   timeline.Labels(len(cfg.Mesh.Weights)),
		Weights: cfg.Mesh.Weights,
		Cells:   cells,
		Lots:    lots,
	}, nil
}

// Snapshot is everything shown for one slot under one scenario.
type Snapshot struct {
	TimeIndex int                   `json:"time_index"`
	Slot      string                `json:"slot"`
	Scenario  model.ScenarioID      `json:"scenario"`
	Cells     []model.CellView      `json:"cells"`
	Context   model.ScenarioContext `json:"context"`
	Lots      []model.LotView       `json:"lots"`
	Flows     []model.FlowLine      `json:"flows"`
	Impact    report.Impact         `json:"impact"`
}

// Samples splits the snapshot back into its baseline and adjusted figures.
func (s Snapshot) Samples() (before, after report.Sample) {
	before.Counts = make([]int, len(s.Cells))
	after.Counts = make([]int, len(s.Cells))
	for i, c := range s.Cells {
		before.Counts[i] = c.BaseCount
		after.Counts[i] = c.Count
	}
	before.Occupancy = make([]float64, len(s.Lots))
	after.Occupancy = make([]float64, len(s.Lots))
	before.Prices = make([]int, len(s.Lots))
	after.Prices = make([]int, len(s.Lots))
	for i, l := range s.Lots {
		before.Occupancy[i] = l.BaseOccupancy
		after.Occupancy[i] = l.OccupancyValue
		before.Prices[i] = l.BaseSlotPrice
		after.Prices[i] = l.PriceValue
	}
	return before, after
}

func (b *Baseline) check(ti int, id model.ScenarioID) error {
	if ti < 0 || ti >= len(b.Slots) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrTimeIndex, ti, len(b.Slots))
	}
	if id != model.ScenarioNone {
		if _, ok := scenario.Lookup(id); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownScenario, id)
		}
	}
	return nil
}

// Snapshot derives the display at slot ti under scenario id. The context is
// always ranked on baseline counts.
func (b *Baseline) Snapshot(ti int, id model.ScenarioID) (Snapshot, error) {
	if err := b.check(ti, id); err != nil {
		return Snapshot{}, err
	}

	cells := make([]model.CellView, len(b.Cells))
	for i, c := range b.Cells {
		base := c.Counts[ti]
		cells[i] = model.CellView{Cell: c, BaseCount: base, Count: scenario.TransformMeshCount(base, c, id)}
	}

	ctx := scenario.BuildContext(id, cells)

	lots := make([]model.LotView, len(b.Lots))
	for i, l := range b.Lots {
		v := scenario.TransformParking(l, ti, id, ctx)
		lots[i] = model.LotView{
			ParkingLot:     l,
			BaseOccupancy:  l.Occupancy[ti],
			BaseSlotPrice:  l.Price[ti],
			OccupancyValue: v.Occupancy,
			PriceValue:     v.Price,
		}
	}

	snap := Snapshot{
		TimeIndex: ti,
		Slot:      b.Slots[ti],
		Scenario:  id,
		Cells:     cells,
		Context:   ctx,
		Lots:      lots,
		Flows:     scenario.BuildFlowLines(id, cells, ctx),
	}
	before, after := snap.Samples()
	snap.Impact = report.Summarize(id, before, after)
	return snap, nil
}

// Series is one scenario across the whole window: per slot, the raw baseline
// and adjusted samples and their summary.
type Series struct {
	Scenario model.ScenarioID `json:"scenario"`
	Slots    []string         `json:"slots"`
	Before   []report.Sample  `json:"before"`
	After    []report.Sample  `json:"after"`
	Impacts  []report.Impact  `json:"impacts"`
}

// Series summarizes every slot under id.
func (b *Baseline) Series(id model.ScenarioID) (Series, error) {
	n := len(b.Slots)
	s := Series{
		Scenario: id,
		Slots:    b.Slots,
		Before:   make([]report.Sample, n),
		After:    make([]report.Sample, n),
		Impacts:  make([]report.Impact, n),
	}
	for ti := range b.Slots {
		snap, err := b.Snapshot(ti, id)
		if err != nil {
			return Series{}, err
		}
		s.Before[ti], s.After[ti] = snap.Samples()
		s.Impacts[ti] = snap.Impact
	}
	return s, nil
}
