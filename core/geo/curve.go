package geo

import (
	"math"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/internal/numeric"
)

const (
	// degenerateKm is the distance under which a path is drawn straight.
	degenerateKm   = 0.05
	minCurveOffset = 0.12
	maxCurveOffset = 0.45
	curveSharpness = 0.85
)

// CurvePath returns a smoothed arc from `from` to `to`. The arc bends through
// a waypoint offset perpendicular to the chord's midpoint by
// clamp(distance*strength, 0.12, 0.45) km; direction +1 bends right of the
// heading and -1 bends left. Pairs closer than 50 m, or any pair whose
// distance is not finite, get the straight two-point path.
func CurvePath(from, to model.LatLng, strength float64, direction int) []model.LatLng {
	d := Distance(from, to)
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= degenerateKm {
		return []model.LatLng{from, to}
	}
	heading := Bearing(from, to)
	mid := Destination(from, d*0.5, heading)
	offset := numeric.Clamp(d*strength, minCurveOffset, maxCurveOffset)
	waypoint := Destination(mid, offset, heading+90*float64(direction))
	return BezierSpline([]model.LatLng{from, waypoint, to}, curveSharpness, SplineSamples)
}
