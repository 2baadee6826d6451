// Package report aggregates one slot's baseline and scenario displays into the
// before/after impact figures handed to the reporting collaborator.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/internal/numeric"
)

// Sample is one side of a comparison: every cell count and every lot's
// occupancy fraction and price at a single slot.
type Sample struct {
	Counts    []int     `json:"counts"`
	Occupancy []float64 `json:"occupancy"`
	Prices    []int     `json:"prices"`
}

// Impact holds rounded before/after figures. Occupancy is in percent.
type Impact struct {
	AvgBefore       int    `json:"avg_before"`
	AvgAfter        int    `json:"avg_after"`
	PeakBefore      int    `json:"peak_before"`
	PeakAfter       int    `json:"peak_after"`
	OccupancyBefore int    `json:"occupancy_before"`
	OccupancyAfter  int    `json:"occupancy_after"`
	PriceBefore     int    `json:"price_before"`
	PriceAfter      int    `json:"price_after"`
	PeakDropPct     int    `json:"peak_drop_pct"`
	Narrative       string `json:"narrative"`
}

const baselineNarrative = "比較用のベースラインスナップショットを取得しました。"

// Summarize compares before and after. An empty id is a baseline capture and
// gets the baseline narrative.
func Summarize(id model.ScenarioID, before, after Sample) Impact {
	peakBefore := peak(before.Counts)
	peakAfter := peak(after.Counts)
	im := Impact{
		AvgBefore:       average(ints(before.Counts)),
		AvgAfter:        average(ints(after.Counts)),
		PeakBefore:      peakBefore,
		PeakAfter:       peakAfter,
		OccupancyBefore: average(percent(before.Occupancy)),
		OccupancyAfter:  average(percent(after.Occupancy)),
		PriceBefore:     average(ints(before.Prices)),
		PriceAfter:      average(ints(after.Prices)),
		PeakDropPct:     PeakDrop(peakBefore, peakAfter),
	}
	im.Narrative = Narrative(id, im.PeakDropPct)
	return im
}

// PeakDrop is the rounded percentage fall from before to after, floored at 0.
func PeakDrop(before, after int) int {
	if before <= 0 {
		return 0
	}
	return max(0, numeric.RoundInt(float64(before-after)/float64(before)*100))
}

// Narrative is the one-line outcome shown under the figures.
func Narrative(id model.ScenarioID, peakDropPct int) string {
	if id == model.ScenarioNone {
		return baselineNarrative
	}
	return fmt.Sprintf("ピーク密度は%d%%低下し、平均稼働率は目標帯に近づきました。", peakDropPct)
}

// FormatYen renders a price with thousands separators, e.g. ¥1,280.
func FormatYen(v int) string {
	return "¥" + humanize.Comma(int64(v))
}

func average(xs []float64) int {
	if len(xs) == 0 {
		return 0
	}
	return numeric.RoundInt(stat.Mean(xs, nil))
}

func peak(counts []int) int {
	if len(counts) == 0 {
		return 0
	}
	return int(floats.Max(ints(counts)))
}

func ints(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

func percent(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * 100
	}
	return out
}
