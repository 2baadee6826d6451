// Package scenario holds the policy interventions: the static catalog, the
// context derived from the mesh display, the per-cell and per-lot transforms,
// and the flow vectors drawn between zones.
//
// Every function here is total. An empty or unknown scenario id is the
// identity transform and yields empty contexts and flows.
package scenario

import (
	"fmt"
	"strings"

	"github.com/AayushY02/Parking-MapAI/core/model"
)

var catalog = []model.Scenario{
	{
		ID:      model.ScenarioPeak,
		Title:   "Peak Hours Pricing",
		Pattern: "Midday surge / morning relief",
		Summary: "Midday prices climb to cool peak congestion while morning rates soften to encourage early arrivals.",
		Rules: []string{
			"Midday window (12:15–13:30) runs a premium uplift",
			"Morning window (11:00–11:45) runs a softer rate",
			"Occupancy colors drift to show redistribution",
		},
	},
	{
		ID:      model.ScenarioDemand,
		Title:   "Demand-Based Pricing",
		Pattern: "Live occupancy response",
		Summary: "Prices flex with current occupancy, nudging drivers away from full lots toward quieter blocks.",
		Rules: []string{
			"High-occupancy lots get a price boost",
			"Low-occupancy lots receive a discount",
			"Changes animate over ~1 second",
		},
	},
	{
		ID:      model.ScenarioBalance,
		Title:   "Area-Based Redistribution",
		Pattern: "Hotspot buffering",
		Summary: "Hotspot-adjacent lots go premium while surrounding areas discount to pull vehicles outward.",
		Rules: []string{
			"Hotspot-adjacent parking gets a price lift",
			"Surrounding areas receive a lower price band",
			"Outbound arrows visualize redistribution",
		},
	},
}

// Catalog returns a copy of the known scenarios in display order.
func Catalog() []model.Scenario {
	out := make([]model.Scenario, len(catalog))
	for i, s := range catalog {
		s.Rules = append([]string(nil), s.Rules...)
		out[i] = s
	}
	return out
}

// IDs lists the catalog ids in display order.
func IDs() []model.ScenarioID {
	out := make([]model.ScenarioID, len(catalog))
	for i, s := range catalog {
		out[i] = s.ID
	}
	return out
}

// Lookup finds a scenario by id.
func Lookup(id model.ScenarioID) (model.Scenario, bool) {
	for _, s := range Catalog() {
		if s.ID == id {
			return s, true
		}
	}
	return model.Scenario{}, false
}

// Parse resolves a user-supplied scenario name. "", "none" and "baseline"
// select the baseline.
func Parse(name string) (model.ScenarioID, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "none", "baseline":
		return model.ScenarioNone, nil
	default:
		if _, ok := Lookup(model.ScenarioID(n)); ok {
			return model.ScenarioID(n), nil
		}
		return model.ScenarioNone, fmt.Errorf("unknown scenario %q", name)
	}
}
