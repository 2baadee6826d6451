package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AayushY02/Parking-MapAI/core/model"
)

func TestDistanceOneDegreeLatitude(t *testing.T) {
	d := Distance(model.LatLng{Lat: 0, Lng: 0}, model.LatLng{Lat: 1, Lng: 0})
	assert.InDelta(t, EarthRadiusKm*math.Pi/180, d, 1e-9)
}

func TestBearingCardinal(t *testing.T) {
	origin := model.LatLng{Lat: 0, Lng: 0}
	assert.InDelta(t, 90, Bearing(origin, model.LatLng{Lat: 0, Lng: 1}), 1e-9)
	assert.InDelta(t, 0, Bearing(origin, model.LatLng{Lat: 1, Lng: 0}), 1e-9)
	assert.InDelta(t, -90, Bearing(origin, model.LatLng{Lat: 0, Lng: -1}), 1e-9)
}

func TestDestinationRoundTrip(t *testing.T) {
	start := model.LatLng{Lat: 43.1982, Lng: 140.9991}
	end := Destination(start, 0.85, 37)
	assert.InDelta(t, 0.85, Distance(start, end), 1e-7)
	assert.InDelta(t, 37, Bearing(start, end), 1e-6)
}

func TestDestinationSharesDistanceSphere(t *testing.T) {
	start := model.LatLng{Lat: 43.1982, Lng: 140.9991}
	for _, km := range []float64{0.05, 0.85, 12.5, 100} {
		assert.InDelta(t, km, Distance(start, Destination(start, km, 215)), km*1e-9+1e-9)
	}
}

func TestMinDistance(t *testing.T) {
	p := model.LatLng{Lat: 43.2, Lng: 141}
	_, ok := MinDistance(p, nil)
	assert.False(t, ok)

	near := model.LatLng{Lat: 43.201, Lng: 141}
	far := model.LatLng{Lat: 43.3, Lng: 141}
	d, ok := MinDistance(p, []model.LatLng{far, near})
	require.True(t, ok)
	assert.InDelta(t, Distance(p, near), d, 1e-12)
}

func TestCurvePathDegenerate(t *testing.T) {
	a := model.LatLng{Lat: 43.2, Lng: 141}
	b := model.LatLng{Lat: 43.2001, Lng: 141}
	path := CurvePath(a, b, 0.25, 1)
	assert.Equal(t, []model.LatLng{a, b}, path)
}

func TestCurvePathEndpointsAndSide(t *testing.T) {
	from := model.LatLng{Lat: 43.19, Lng: 141.0}
	to := model.LatLng{Lat: 43.19, Lng: 141.02}

	right := CurvePath(from, to, 0.25, 1)
	left := CurvePath(from, to, 0.25, -1)
	require.Len(t, right, SplineSamples+1)
	require.Len(t, left, SplineSamples+1)

	assert.InDelta(t, from.Lat, right[0].Lat, 1e-12)
	assert.InDelta(t, from.Lng, right[0].Lng, 1e-12)
	assert.Equal(t, to, right[len(right)-1])

	// Heading east, +1 bends south and -1 bends north.
	mid := SplineSamples / 2
	assert.Less(t, right[mid].Lat, from.Lat)
	assert.Greater(t, left[mid].Lat, from.Lat)
}

func TestCurvePathOffsetIsBounded(t *testing.T) {
	from := model.LatLng{Lat: 43.0, Lng: 141.0}
	to := model.LatLng{Lat: 43.2, Lng: 141.0}
	path := CurvePath(from, to, 0.9, 1)
	mid := path[SplineSamples/2]
	chordMid := Destination(from, Distance(from, to)/2, Bearing(from, to))
	assert.InDelta(t, maxCurveOffset, Distance(chordMid, mid), 0.01)
}

func TestBezierSplinePassesThroughPoints(t *testing.T) {
	pts := []model.LatLng{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 2}, {Lat: 1, Lng: 3}}
	out := BezierSpline(pts, 0.85, 30)
	require.Len(t, out, 31)
	// With three segments and 30 samples every 10th sample lands on a knot.
	for i, k := range []int{0, 10, 20} {
		assert.InDelta(t, pts[i].Lat, out[k].Lat, 1e-12)
		assert.InDelta(t, pts[i].Lng, out[k].Lng, 1e-12)
	}
	assert.Equal(t, pts[3], out[30])
}

func TestBezierSplineShortInput(t *testing.T) {
	one := []model.LatLng{{Lat: 1, Lng: 2}}
	assert.Equal(t, one, BezierSpline(one, 0.85, 10))
}
