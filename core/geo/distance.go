package geo

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/AayushY02/Parking-MapAI/core/model"
)

// EarthRadiusKm is the mean earth radius used for distance thresholds.
const EarthRadiusKm = 6371.0088

// Distance returns the great-circle distance between a and b in kilometres.
func Distance(a, b model.LatLng) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// Bearing returns the initial bearing from a to b in degrees (-180, 180].
func Bearing(a, b model.LatLng) float64 {
	return orbgeo.Bearing(toPoint(a), toPoint(b))
}

// Destination projects p by km along bearing on the same sphere as Distance.
func Destination(p model.LatLng, km, bearing float64) model.LatLng {
	return fromPoint(orbgeo.PointAtBearingAndDistance(toPoint(p), bearing, km*radiusScale*1000))
}

// radiusScale converts arc length on the EarthRadiusKm sphere to the sphere
// orb/geo projects on.
const radiusScale = orb.EarthRadius / (EarthRadiusKm * 1000)

// MinDistance returns the smallest distance from p to any of targets, or
// false when targets is empty.
func MinDistance(p model.LatLng, targets []model.LatLng) (float64, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	best := Distance(p, targets[0])
	for _, t := range targets[1:] {
		if d := Distance(p, t); d < best {
			best = d
		}
	}
	return best, true
}

func toPoint(p model.LatLng) orb.Point { return orb.Point{p.Lng, p.Lat} }

func fromPoint(p orb.Point) model.LatLng { return model.LatLng{Lat: p.Lat(), Lng: p.Lon()} }
