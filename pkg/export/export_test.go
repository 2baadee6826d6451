package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/scenario"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
)

func baseline(t *testing.T) *simulation.Baseline {
	t.Helper()
	b, err := simulation.NewBaseline(simulation.DefaultConfig())
	require.NoError(t, err)
	return b
}

func TestWriteJSONSnapshot(t *testing.T) {
	s, err := baseline(t).Snapshot(8, model.ScenarioPeak)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, s))

	var back simulation.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, s.Impact, back.Impact)
	assert.Len(t, back.Cells, len(s.Cells))
	assert.Equal(t, s.Cells[0].Zone, back.Cells[0].Zone)
}

func TestWriteSeriesCSV(t *testing.T) {
	series, err := baseline(t).Series(model.ScenarioDemand)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteSeriesCSV(&buf, series))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(series.Slots)+1)
	assert.Equal(t, seriesHeader, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, series.Slots[0], rows[1][1])
	assert.Equal(t, "demand", rows[1][2])
}

func TestFeatureCollection(t *testing.T) {
	s, err := baseline(t).Snapshot(8, model.ScenarioBalance)
	require.NoError(t, err)
	fc := FeatureCollection(s)
	require.Len(t, fc.Features, len(s.Cells)+len(s.Lots)+len(s.Flows))

	cell := fc.Features[0]
	poly, ok := cell.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly[0], 5)
	assert.Equal(t, poly[0][0], poly[0][4])
	assert.Equal(t, KindCell, cell.Properties["kind"])
	assert.Equal(t, s.Cells[0].ID, cell.Properties["id"])
	assert.Equal(t, s.Cells[0].Label, cell.Properties["label"])
	for _, f := range fc.Features[:len(s.Cells)] {
		ring := f.Geometry.(orb.Polygon)[0]
		require.Equal(t, orb.CCW, ring.Orientation(), f.Properties["id"])
		require.Equal(t, ring[0], ring[len(ring)-1])
	}

	lot := fc.Features[len(s.Cells)]
	pt, ok := lot.Geometry.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, s.Lots[0].Position.Lng, pt.Lon())
	assert.Equal(t, s.Lots[0].Position.Lat, pt.Lat())
	assert.True(t, strings.HasPrefix(lot.Properties["price_label"].(string), "¥"))

	flow := fc.Features[len(fc.Features)-1]
	_, ok = flow.Geometry.(orb.LineString)
	assert.True(t, ok)
	assert.Equal(t, KindFlow, flow.Properties["kind"])
}

func TestWriteGeoJSONParses(t *testing.T) {
	s, err := baseline(t).Snapshot(0, model.ScenarioNone)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteGeoJSON(&buf, s))
	fc, err := geojson.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, len(s.Cells)+len(s.Lots))
}

func TestCatalogYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCatalogYAML(&buf, scenario.Catalog()))
	assert.Contains(t, buf.String(), "scenarios:")
	back, err := ReadCatalogYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, scenario.Catalog(), back)
}
