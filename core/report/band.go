package report

// Band is a coarse level used to colour cells and lots.
type Band string

const (
	BandHigh Band = "high"
	BandMid  Band = "mid"
	BandLow  Band = "low"
)

var (
	meshColors = map[Band]string{
		BandHigh: "#f97316",
		BandMid:  "#facc15",
		BandLow:  "#22c55e",
	}
	occupancyColors = map[Band]string{
		BandHigh: "#ef4444",
		BandMid:  "#facc15",
		BandLow:  "#22c55e",
	}
)

// MeshBand classifies a people count.
func MeshBand(count int) Band {
	switch {
	case count >= 110:
		return BandHigh
	case count >= 70:
		return BandMid
	default:
		return BandLow
	}
}

// OccupancyBand classifies an occupancy fraction.
func OccupancyBand(frac float64) Band {
	switch {
	case frac >= 0.8:
		return BandHigh
	case frac >= 0.55:
		return BandMid
	default:
		return BandLow
	}
}

// MeshColor is the fill colour for a people count.
func MeshColor(count int) string { return meshColors[MeshBand(count)] }

// OccupancyColor is the marker colour for an occupancy fraction.
func OccupancyColor(frac float64) string { return occupancyColors[OccupancyBand(frac)] }
