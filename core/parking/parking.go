// Package parking generates the synthetic parking inventory: lots scattered
// around the centre with per-slot occupancy and price series.
package parking

import (
	"fmt"
	"math"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/prng"
	"github.com/AayushY02/Parking-MapAI/core/timeline"
	"github.com/AayushY02/Parking-MapAI/internal/numeric"
)

const (
	// MinOccupancy and MaxOccupancy bound generated occupancy.
	MinOccupancy = 0.12
	MaxOccupancy = 0.98

	placementSeed  = 4217
	seriesMult     = 13
	maxRadiusDeg   = 0.026
	lngStretch     = 1.25
	falloffDeg     = 0.028
	coreRadiusDeg  = 0.008
	surgePerOcc    = 420
	surgePivot     = 0.45
	middayPremium  = 60
	premiumFirst   = 6
	premiumLast    = 9
	defaultLotSize = 60
)

var (
	namePrefixes = []string{
		"Canal", "Market", "Warehouse", "Harbor", "Station",
		"Promenade", "Heritage", "Bridge", "Unga", "Historic",
		"Pier", "North", "South", "East", "West",
	}
	nameSuffixes = []string{"Lot", "Deck", "Terrace", "Hub", "Gate", "Square", "Yard", "Garage"}
)

// Config describes the inventory to generate.
type Config struct {
	Center  model.LatLng
	Count   int
	Weights []float64
}

// DefaultCenter is the centre the lots are scattered around.
var DefaultCenter = model.LatLng{Lat: 43.1982, Lng: 140.9991}

// DefaultConfig returns the 60-lot inventory over the default window.
func DefaultConfig() Config {
	cfg := Config{Center: DefaultCenter}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Count == 0 {
		c.Count = defaultLotSize
	}
	if c.Weights == nil {
		c.Weights = timeline.Weights(timeline.SlotCount)
	}
}

// Validate checks the lot count and the weight series.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("lot count must not be negative, got %d", c.Count)
	}
	if len(c.Weights) < 2 {
		return fmt.Errorf("need at least 2 time weights, got %d", len(c.Weights))
	}
	return nil
}

// seedLot is the placement draw of a lot before its series are expanded.
type seedLot struct {
	id        string
	name      string
	latOff    float64
	lngOff    float64
	capacity  int
	basePrice int
}

// place draws every lot from one shared stream in index order: angle,
// radius, capacity then base price.
func place(count int) []seedLot {
	rnd := prng.New(placementSeed)
	out := make([]seedLot, count)
	for i := range out {
		angle := rnd.Next() * math.Pi * 2
		radius := math.Sqrt(rnd.Next()) * maxRadiusDeg
		out[i] = seedLot{
			id:        fmt.Sprintf("P-%02d", i+1),
			name:      namePrefixes[i%len(namePrefixes)] + " " + nameSuffixes[(i+3)%len(nameSuffixes)],
			latOff:    math.Cos(angle) * radius,
			lngOff:    math.Sin(angle) * radius * lngStretch,
			capacity:  numeric.RoundInt(60 + rnd.Next()*160),
			basePrice: numeric.RoundInt(220 + rnd.Next()*220),
		}
	}
	return out
}

// Generate builds the inventory in id order.
func Generate(cfg Config) ([]model.ParkingLot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parking config: %w", err)
	}
	seeds := place(cfg.Count)
	lots := make([]model.ParkingLot, 0, len(seeds))
	for _, s := range seeds {
		lots = append(lots, expand(cfg, s))
	}
	return lots, nil
}

func expand(cfg Config, s seedLot) model.ParkingLot {
	dist := math.Hypot(s.latOff, s.lngOff/lngStretch)
	distFactor := numeric.Clamp(1-dist/falloffDeg, 0.25, 1)

	rnd := prng.StreamFor(s.id, seriesMult)
	bias := 0.85 + rnd.Next()*0.3
	shift := rnd.Next() * math.Pi * 2
	base := (0.28 + distFactor*0.6) * bias

	occ := make([]float64, len(cfg.Weights))
	price := make([]int, len(cfg.Weights))
	for i, w := range cfg.Weights {
		t := timeline.Progress(i, len(cfg.Weights)) * math.Pi * 2
		rhythm := 1 + 0.08*math.Sin(t+shift) + 0.05*math.Cos(t*1.6+shift)
		noise := (rnd.Next() - 0.5) * 0.12
		occ[i] = numeric.Clamp(base*w*rhythm+noise, MinOccupancy, MaxOccupancy)

		p := float64(s.basePrice) + (occ[i]-surgePivot)*surgePerOcc
		if i >= premiumFirst && i <= premiumLast {
			p += middayPremium
		}
		price[i] = numeric.RoundInt(p)
	}

	return model.ParkingLot{
		ID:        s.id,
		Name:      s.name,
		Position:  model.LatLng{Lat: cfg.Center.Lat + s.latOff, Lng: cfg.Center.Lng + s.lngOff},
		Capacity:  s.capacity,
		BasePrice: s.basePrice,
		Occupancy: occ,
		Price:     price,
		IsCore:    dist < coreRadiusDeg,
	}
}
