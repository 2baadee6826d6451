package model

// ScenarioID selects a policy intervention. The empty id means baseline.
type ScenarioID string

const (
	ScenarioNone    ScenarioID = ""
	ScenarioPeak    ScenarioID = "peak"
	ScenarioDemand  ScenarioID = "demand"
	ScenarioBalance ScenarioID = "balance"
)

// String returns "baseline" for the empty id.
func (id ScenarioID) String() string {
	if id == ScenarioNone {
		return "baseline"
	}
	return string(id)
}

// Scenario is the static description of an intervention.
type Scenario struct {
	ID      ScenarioID `json:"id" yaml:"id"`
	Title   string     `json:"title" yaml:"title"`
	Pattern string     `json:"pattern" yaml:"pattern"`
	Summary string     `json:"summary" yaml:"summary"`
	Rules   []string   `json:"rules" yaml:"rules"`
}

// Spot is a ranked cell used as a redistribution anchor.
type Spot struct {
	Center    LatLng `json:"center"`
	Intensity int    `json:"intensity"`
}

// ScenarioContext is derived per render pass from the mesh display. A nil
// GridCenter with no spots is the empty context.
type ScenarioContext struct {
	Hotspots   []Spot  `json:"hotspots"`
	Lowspots   []Spot  `json:"lowspots"`
	GridCenter *LatLng `json:"grid_center"`
}

// Empty reports whether the context carries no anchors.
func (c ScenarioContext) Empty() bool { return len(c.Hotspots) == 0 }
