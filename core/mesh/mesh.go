// Package mesh generates the crowd-density grid: a rectangle of cells around a
// centre point whose per-slot people counts blend a radial core falloff, a
// north–south corridor and a few gaussian hotspots, modulated over the day.
//
// Generation is deterministic: the same Config always yields identical cells.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/prng"
	"github.com/AayushY02/Parking-MapAI/core/timeline"
	"github.com/AayushY02/Parking-MapAI/internal/numeric"
)

const (
	// MinCount and MaxCount bound every generated count.
	MinCount = 12
	MaxCount = 230

	metersPerDegree = 111000.0
	hotspotCount    = 4
	hotspotSeed     = 9021
	biasMultiplier  = 19
	noiseMultiplier = 131
)

// Config describes the grid to generate.
type Config struct {
	Center         model.LatLng
	Rows           int
	Cols           int
	CellSizeMeters float64
	// Weights is the day-shape curve, one entry per slot.
	Weights []float64
}

// DefaultCenter is the centre of the simulated area.
var DefaultCenter = model.LatLng{Lat: 43.1982, Lng: 140.9991}

// DefaultConfig returns the 24×24 grid of 250 m cells over the default window.
func DefaultConfig() Config {
	cfg := Config{Center: DefaultCenter}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Rows == 0 {
		c.Rows = 24
	}
	if c.Cols == 0 {
		c.Cols = 24
	}
	if c.CellSizeMeters == 0 {
		c.CellSizeMeters = 250
	}
	if c.Weights == nil {
		c.Weights = timeline.Weights(timeline.SlotCount)
	}
}

// Validate checks the grid dimensions.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.CellSizeMeters <= 0 {
		return errors.New("cell_size_meters must be positive")
	}
	if len(c.Weights) < 2 {
		return fmt.Errorf("need at least 2 time weights, got %d", len(c.Weights))
	}
	if math.Abs(c.Center.Lat) >= 90 {
		return fmt.Errorf("center latitude %v out of range", c.Center.Lat)
	}
	return nil
}

type hotspot struct {
	row, col      float64
	spread, power float64
}

// grid carries the derived geometry shared by every cell.
type grid struct {
	rows, cols int
	centerRow  float64
	centerCol  float64
	maxDist    float64
	latDelta   float64
	lngDelta   float64
	startLat   float64
	startLng   float64
}

func newGrid(cfg Config) grid {
	latDelta := cfg.CellSizeMeters / metersPerDegree
	lngDelta := cfg.CellSizeMeters / (metersPerDegree * math.Cos(cfg.Center.Lat*math.Pi/180))
	cr := float64(cfg.Rows-1) / 2
	cc := float64(cfg.Cols-1) / 2
	return grid{
		rows:      cfg.Rows,
		cols:      cfg.Cols,
		centerRow: cr,
		centerCol: cc,
		maxDist:   math.Hypot(cr, cc),
		latDelta:  latDelta,
		lngDelta:  lngDelta,
		startLat:  cfg.Center.Lat - float64(cfg.Rows)/2*latDelta,
		startLng:  cfg.Center.Lng - float64(cfg.Cols)/2*lngDelta,
	}
}

// placeHotspots draws the hotspots within ±30% of the grid extent around its
// centre. Draw order per hotspot is row, col, spread, power.
func placeHotspots(g grid) []hotspot {
	rnd := prng.New(hotspotSeed)
	out := make([]hotspot, hotspotCount)
	for i := range out {
		row := numeric.Clamp(g.centerRow+(rnd.Next()-0.5)*float64(g.rows)*0.6, 0, float64(g.rows-1))
		col := numeric.Clamp(g.centerCol+(rnd.Next()-0.5)*float64(g.cols)*0.6, 0, float64(g.cols-1))
		out[i] = hotspot{
			row:    row,
			col:    col,
			spread: 2.6 + rnd.Next()*4.4,
			power:  0.55 + rnd.Next()*0.6,
		}
	}
	return out
}

func gaussian(distance, spread float64) float64 {
	return math.Exp(-(distance * distance) / (2 * spread * spread))
}

// Generate builds the cells in row-major order.
func Generate(cfg Config) ([]model.Cell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mesh config: %w", err)
	}
	g := newGrid(cfg)
	spots := placeHotspots(g)
	cells := make([]model.Cell, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			c := g.cell(row, col)
			dist := math.Hypot(float64(row)-g.centerRow, float64(col)-g.centerCol)
			base := g.intensity(row, col, dist, spots)
			c.Counts = series(c.ID, row, col, base, cfg.Weights)
			c.Zone = g.zone(dist)
			c.Label = c.Zone.Label()
			c.IsCore = c.Zone == model.ZoneCore
			c.IsEdge = c.Zone == model.ZoneEdge
			cells = append(cells, c)
		}
	}
	return cells, nil
}

func (g grid) cell(row, col int) model.Cell {
	lat := g.startLat + float64(row)*g.latDelta
	lng := g.startLng + float64(col)*g.lngDelta
	return model.Cell{
		ID:  fmt.Sprintf("M-%d-%d", row, col),
		Row: row,
		Col: col,
		Polygon: [4]model.LatLng{
			{Lat: lat, Lng: lng},
			{Lat: lat + g.latDelta, Lng: lng},
			{Lat: lat + g.latDelta, Lng: lng + g.lngDelta},
			{Lat: lat, Lng: lng + g.lngDelta},
		},
		Center: model.LatLng{Lat: lat + g.latDelta/2, Lng: lng + g.lngDelta/2},
	}
}

// intensity is the slot-independent baseline of a cell, in [35, 200].
func (g grid) intensity(row, col int, dist float64, spots []hotspot) float64 {
	core := 0.08
	if g.maxDist > 0 {
		core = numeric.Clamp(1-dist/(g.maxDist*0.95), 0.08, 1)
	}
	corridor := 0.6 + 0.4*math.Exp(-math.Pow((float64(col)-g.centerCol)/(float64(g.cols)*0.18), 2))
	var heat float64
	for _, h := range spots {
		d := math.Hypot(float64(row)-h.row, float64(col)-h.col)
		heat += h.power * gaussian(d, h.spread)
	}
	blend := numeric.Clamp(heat/1.7, 0, 1)
	return 35 + 165*numeric.Clamp(0.55*core+0.45*blend, 0.1, 1)*corridor
}

// series expands the baseline over the day using two streams keyed by the
// cell id: one for the fixed bias/ripple and one for per-slot noise.
func series(id string, row, col int, base float64, weights []float64) []int {
	seed := prng.StreamFor(id, biasMultiplier)
	bias := 1 + (seed.Next()-0.5)*0.2
	ripple := (seed.Next() - 0.5) * 0.12
	noise := prng.StreamFor(id, noiseMultiplier)

	counts := make([]int, len(weights))
	for i, w := range weights {
		t := timeline.Progress(i, len(weights)) * math.Pi * 2
		wave := 1 +
			0.1*math.Sin(t+float64(row)*0.24+ripple) +
			0.06*math.Cos(t*1.4+float64(col)*0.2)
		n := (noise.Next() - 0.5) * 22
		counts[i] = numeric.RoundInt(numeric.Clamp(base*w*bias*wave+n, MinCount, MaxCount))
	}
	return counts
}

func (g grid) zone(dist float64) model.Zone {
	switch {
	case dist < g.maxDist*0.45:
		return model.ZoneCore
	case dist > g.maxDist*0.75:
		return model.ZoneEdge
	default:
		return model.ZoneRing
	}
}
