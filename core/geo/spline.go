package geo

import (
	"math"

	"github.com/AayushY02/Parking-MapAI/core/model"
)

// SplineSamples is the number of segments a smoothed path is sampled into.
const SplineSamples = 48

type vec struct{ x, y float64 }

func (a vec) add(b vec) vec       { return vec{a.x + b.x, a.y + b.y} }
func (a vec) scale(f float64) vec { return vec{a.x * f, a.y * f} }
func (a vec) mid(b vec) vec       { return vec{(a.x + b.x) / 2, (a.y + b.y) / 2} }
func (a vec) lerp(b vec, f float64) vec {
	return vec{(1-f)*a.x + f*b.x, (1-f)*a.y + f*b.y}
}

// BezierSpline smooths a polyline through pts with piecewise cubic bezier
// segments. The curve passes through every input point; sharpness in (0,1]
// controls how far the handles reach toward neighbouring midpoints. The
// result has samples+1 points and always ends exactly on the last input.
func BezierSpline(pts []model.LatLng, sharpness float64, samples int) []model.LatLng {
	if len(pts) < 2 || samples < 1 {
		out := make([]model.LatLng, len(pts))
		copy(out, pts)
		return out
	}
	p := make([]vec, len(pts))
	for i, pt := range pts {
		p[i] = vec{pt.Lng, pt.Lat}
	}
	centers := make([]vec, len(p)-1)
	for i := range centers {
		centers[i] = p[i].mid(p[i+1])
	}
	// controls[i] holds the incoming and outgoing handle of point i.
	controls := make([][2]vec, 0, len(p))
	controls = append(controls, [2]vec{p[0], p[0]})
	for i := 0; i < len(centers)-1; i++ {
		d := p[i+1].add(centers[i].mid(centers[i+1]).scale(-1))
		controls = append(controls, [2]vec{
			p[i+1].lerp(centers[i].add(d), sharpness),
			p[i+1].lerp(centers[i+1].add(d), sharpness),
		})
	}
	last := p[len(p)-1]
	controls = append(controls, [2]vec{last, last})

	segments := float64(len(p) - 1)
	out := make([]model.LatLng, 0, samples+1)
	for k := 0; k < samples; k++ {
		pos := segments * float64(k) / float64(samples)
		n := int(math.Floor(pos))
		v := cubic(pos-float64(n), p[n], controls[n][1], controls[n+1][0], p[n+1])
		out = append(out, model.LatLng{Lat: v.y, Lng: v.x})
	}
	out = append(out, pts[len(pts)-1])
	return out
}

func cubic(t float64, p1, c1, c2, p2 vec) vec {
	u := 1 - t
	b0 := t * t * t
	b1 := 3 * t * t * u
	b2 := 3 * t * u * u
	b3 := u * u * u
	return vec{
		x: p2.x*b0 + c2.x*b1 + c1.x*b2 + p1.x*b3,
		y: p2.y*b0 + c2.y*b1 + c1.y*b2 + p1.y*b3,
	}
}
