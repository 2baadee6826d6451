// Package export writes snapshots, series and the scenario catalog in the
// formats consumed outside the simulator.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
)

// WriteJSON writes v to w as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var seriesHeader = []string{
	"time_index", "slot", "scenario",
	"avg_before", "avg_after", "peak_before", "peak_after",
	"occupancy_before", "occupancy_after", "price_before", "price_after",
	"peak_drop_pct",
}

// WriteSeriesCSV writes one row per slot of s with its impact figures.
func WriteSeriesCSV(w io.Writer, s simulation.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(seriesHeader); err != nil {
		return err
	}
	for i, im := range s.Impacts {
		slot := ""
		if i < len(s.Slots) {
			slot = s.Slots[i]
		}
		rec := []string{
			strconv.Itoa(i), slot, s.Scenario.String(),
			strconv.Itoa(im.AvgBefore), strconv.Itoa(im.AvgAfter),
			strconv.Itoa(im.PeakBefore), strconv.Itoa(im.PeakAfter),
			strconv.Itoa(im.OccupancyBefore), strconv.Itoa(im.OccupancyAfter),
			strconv.Itoa(im.PriceBefore), strconv.Itoa(im.PriceAfter),
			strconv.Itoa(im.PeakDropPct),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type catalogFile struct {
	Scenarios []model.Scenario `yaml:"scenarios"`
}

// WriteCatalogYAML writes the scenario catalog as YAML.
func WriteCatalogYAML(w io.Writer, scenarios []model.Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalogFile{Scenarios: scenarios}); err != nil {
		return err
	}
	return enc.Close()
}

// ReadCatalogYAML parses a catalog written by WriteCatalogYAML.
func ReadCatalogYAML(r io.Reader) ([]model.Scenario, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return f.Scenarios, nil
}
