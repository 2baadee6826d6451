// Package timeline defines the simulated day: a fixed run of 15-minute slots
// and the relative intensity weight of each slot.
package timeline

import (
	"fmt"
	"math"
	"time"

	"github.com/AayushY02/Parking-MapAI/internal/numeric"
)

const (
	// SlotCount is the number of slots in the simulated window (11:00–14:30).
	SlotCount = 15
	// SlotDuration is the cadence between two labels.
	SlotDuration = 15 * time.Minute
)

var windowStart = time.Date(0, 1, 1, 11, 0, 0, 0, time.UTC)

// Labels returns n "HH:MM" labels starting at 11:00.
func Labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = windowStart.Add(time.Duration(i) * SlotDuration).Format("15:04")
	}
	return out
}

// Progress maps slot i of n onto [0,1]. It requires n >= 2.
func Progress(i, n int) float64 {
	mustSpan(n)
	return float64(i) / float64(n-1)
}

// Weights evaluates the day-shape curve for n slots: a bell centred on
// t=0.55 plus a one-period sine shoulder, bounded to [0.35, 1.05].
// n < 2 leaves t undefined and panics.
func Weights(n int) []float64 {
	mustSpan(n)
	out := make([]float64, n)
	for i := range out {
		t := Progress(i, n)
		peak := math.Exp(-math.Pow((t-0.55)/0.25, 2))
		shoulder := 0.12 * math.Sin(t*math.Pi*2)
		out[i] = numeric.Clamp(0.42+0.65*peak+shoulder, 0.35, 1.05)
	}
	return out
}

func mustSpan(n int) {
	if n < 2 {
		panic(fmt.Sprintf("timeline: need at least 2 slots, got %d", n))
	}
}
