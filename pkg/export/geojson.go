package export

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/report"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
)

// Feature kinds stored in the "kind" property.
const (
	KindCell = "cell"
	KindLot  = "lot"
	KindFlow = "flow"
)

// FeatureCollection converts a snapshot into mesh polygons, lot points and
// flow line strings.
func FeatureCollection(s simulation.Snapshot) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range s.Cells {
		ring := make(orb.Ring, 0, len(c.Polygon)+1)
		for _, p := range c.Polygon {
			ring = append(ring, point(p))
		}
		ring = append(ring, ring[0])
		// RFC 7946 exterior rings are counter-clockwise.
		if ring.Orientation() != orb.CCW {
			ring.Reverse()
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["kind"] = KindCell
		f.Properties["id"] = c.ID
		f.Properties["zone"] = c.Zone.String()
		f.Properties["label"] = c.Label
		f.Properties["base_count"] = c.BaseCount
		f.Properties["count"] = c.Count
		f.Properties["band"] = string(report.MeshBand(c.Count))
		f.Properties["color"] = report.MeshColor(c.Count)
		fc.Append(f)
	}
	for _, l := range s.Lots {
		f := geojson.NewFeature(point(l.Position))
		f.Properties["kind"] = KindLot
		f.Properties["id"] = l.ID
		f.Properties["name"] = l.Name
		f.Properties["capacity"] = l.Capacity
		f.Properties["base_occupancy"] = l.BaseOccupancy
		f.Properties["occupancy"] = l.OccupancyValue
		f.Properties["base_price"] = l.BaseSlotPrice
		f.Properties["price"] = l.PriceValue
		f.Properties["price_label"] = report.FormatYen(l.PriceValue)
		f.Properties["band"] = string(report.OccupancyBand(l.OccupancyValue))
		f.Properties["color"] = report.OccupancyColor(l.OccupancyValue)
		fc.Append(f)
	}
	for i, fl := range s.Flows {
		path := fl.Path
		if len(path) < 2 {
			path = []model.LatLng{fl.From, fl.To}
		}
		ls := make(orb.LineString, len(path))
		for j, p := range path {
			ls[j] = point(p)
		}
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = KindFlow
		f.Properties["index"] = i
		f.Properties["label"] = fl.Label
		f.Properties["value"] = fl.Value
		f.Properties["weight"] = fl.Weight
		f.Properties["color"] = fl.Color
		f.Properties["trend"] = string(fl.Trend)
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON writes the snapshot as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, s simulation.Snapshot) error {
	b, err := FeatureCollection(s).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func point(p model.LatLng) orb.Point { return orb.Point{p.Lng, p.Lat} }
