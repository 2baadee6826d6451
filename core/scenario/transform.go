package scenario

import (
	"math"

	"github.com/AayushY02/Parking-MapAI/core/geo"
	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/internal/numeric"
)

const (
	// MinOccupancy and MaxOccupancy bound every transformed occupancy.
	MinOccupancy = 0.10
	MaxOccupancy = 0.98

	nearHotspotKm = 0.45
	midHotspotKm  = 0.95
)

// TransformMeshCount applies the scenario's redistribution to one cell count.
// Results are rounded but not re-clamped.
func TransformMeshCount(count int, cell model.Cell, id model.ScenarioID) int {
	c := float64(count)
	switch id {
	case model.ScenarioPeak:
		switch {
		case count >= 120:
			return numeric.RoundInt(c * 0.72)
		case count >= 80:
			return numeric.RoundInt(c * 0.82)
		default:
			return numeric.RoundInt(c * 0.93)
		}
	case model.ScenarioDemand:
		switch {
		case count >= 110:
			return numeric.RoundInt(c * 0.8)
		case count < 60:
			return numeric.RoundInt(c * 1.1)
		default:
			return numeric.RoundInt(c * 0.92)
		}
	case model.ScenarioBalance:
		switch {
		case cell.IsCore:
			return numeric.RoundInt(c * 0.68)
		case cell.IsEdge:
			return numeric.RoundInt(c * 1.15)
		default:
			return numeric.RoundInt(c * 1.05)
		}
	default:
		return count
	}
}

// PeakMultiplier is the time-of-day price factor of the peak scenario: a
// midday bell minus a morning dip, bounded to [0.85, 1.28]. A series of one
// slot or fewer has no time axis and gets 1.
func PeakMultiplier(timeIndex, slotCount int) float64 {
	if slotCount <= 1 {
		return 1
	}
	t := float64(timeIndex) / float64(slotCount-1)
	peak := math.Exp(-math.Pow((t-0.55)/0.18, 2))
	dip := math.Exp(-math.Pow((t-0.12)/0.14, 2))
	return numeric.Clamp(0.96+0.28*peak-0.12*dip, 0.85, 1.28)
}

// pressure maps occupancy onto [-1, 1] around the 0.55 target.
func pressure(occupancy float64) float64 {
	return numeric.Clamp((occupancy-0.55)/0.35, -1, 1)
}

// TransformParking returns the lot's occupancy and price at timeIndex under
// the scenario. The caller guarantees timeIndex is within the lot's series.
func TransformParking(lot model.ParkingLot, timeIndex int, id model.ScenarioID, ctx model.ScenarioContext) model.ParkingValue {
	occ := lot.Occupancy[timeIndex]
	price := float64(lot.Price[timeIndex])

	switch id {
	case model.ScenarioPeak:
		m := PeakMultiplier(timeIndex, len(lot.Occupancy))
		price *= m
		occ = numeric.Clamp(occ*(1-(m-1)*0.35), MinOccupancy, MaxOccupancy)
	case model.ScenarioDemand:
		p := pressure(occ)
		price *= 1 + p*0.3
		occ = numeric.Clamp(occ-p*0.06, MinOccupancy, MaxOccupancy)
	case model.ScenarioBalance:
		occ, price = balanceLot(lot, occ, price, ctx)
	default:
		return model.ParkingValue{Occupancy: occ, Price: lot.Price[timeIndex]}
	}

	return model.ParkingValue{
		Occupancy: numeric.Clamp(occ, MinOccupancy, MaxOccupancy),
		Price:     numeric.RoundInt(price),
	}
}

// balanceLot bands the lot by its distance to the nearest hotspot. Without
// hotspots it falls back to the lot's own core flag.
func balanceLot(lot model.ParkingLot, occ, price float64, ctx model.ScenarioContext) (float64, float64) {
	centers := make([]model.LatLng, len(ctx.Hotspots))
	for i, h := range ctx.Hotspots {
		centers[i] = h.Center
	}
	if d, ok := geo.MinDistance(lot.Position, centers); ok {
		switch {
		case d <= nearHotspotKm:
			return occ * 0.9, price * 1.22
		case d <= midHotspotKm:
			return occ * 1.05, price * 0.88
		default:
			return occ * 1.02, price * 0.96
		}
	}
	if lot.IsCore {
		return occ * 0.8, price * 1.25
	}
	return occ * 1.05, price * 0.85
}
