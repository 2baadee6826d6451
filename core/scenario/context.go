package scenario

import (
	"cmp"
	"slices"

	"github.com/AayushY02/Parking-MapAI/core/model"
)

// spotCount is how many hotspots and lowspots a context keeps.
const spotCount = 4

// BuildContext ranks the display by baseline count. Ties keep the display's
// row-major order, and lowspots are the same ranking read backwards.
// An empty id or an empty display gives the empty context.
func BuildContext(id model.ScenarioID, cells []model.CellView) model.ScenarioContext {
	if id == model.ScenarioNone || len(cells) == 0 {
		return model.ScenarioContext{Hotspots: []model.Spot{}, Lowspots: []model.Spot{}}
	}

	ranked := slices.Clone(cells)
	slices.SortStableFunc(ranked, func(a, b model.CellView) int {
		return cmp.Compare(b.BaseCount, a.BaseCount)
	})

	hot := make([]model.Spot, 0, spotCount)
	for i := 0; i < len(ranked) && i < spotCount; i++ {
		hot = append(hot, spotOf(ranked[i]))
	}
	low := make([]model.Spot, 0, spotCount)
	for i := len(ranked) - 1; i >= 0 && len(low) < spotCount; i-- {
		low = append(low, spotOf(ranked[i]))
	}

	var center model.LatLng
	for _, c := range cells {
		center.Lat += c.Center.Lat
		center.Lng += c.Center.Lng
	}
	center.Lat /= float64(len(cells))
	center.Lng /= float64(len(cells))

	return model.ScenarioContext{Hotspots: hot, Lowspots: low, GridCenter: &center}
}

func spotOf(c model.CellView) model.Spot {
	return model.Spot{Center: c.Center, Intensity: c.BaseCount}
}
