package model

// Trend tags the direction a flow line represents.
type Trend string

const (
	// TrendDown marks congestion relief toward quieter zones.
	TrendDown Trend = "down"
	// TrendOut marks outward redistribution away from the centre.
	TrendOut Trend = "out"
)

// FlowLine is a directional path between two zones implied by a scenario.
type FlowLine struct {
	From   LatLng   `json:"from"`
	To     LatLng   `json:"to"`
	Path   []LatLng `json:"path"`
	Weight float64  `json:"weight"`
	Color  string   `json:"color"`
	Label  string   `json:"label"`
	Value  int      `json:"value"`
	Trend  Trend    `json:"trend"`
}
