package model

import "fmt"

// Zone classifies a cell by its distance from the grid centre.
type Zone int

const (
	ZoneRing Zone = iota
	ZoneCore
	ZoneEdge
)

// String returns the short zone name.
func (z Zone) String() string {
	switch z {
	case ZoneCore:
		return "core"
	case ZoneEdge:
		return "edge"
	default:
		return "ring"
	}
}

// Label returns the human-readable area name shown for the zone.
func (z Zone) Label() string {
	switch z {
	case ZoneCore:
		return "Canal Core"
	case ZoneEdge:
		return "Outer Fringe"
	default:
		return "Canal Ring"
	}
}

// MarshalText encodes the zone as its short name.
func (z Zone) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

// UnmarshalText decodes a short zone name.
func (z *Zone) UnmarshalText(b []byte) error {
	switch string(b) {
	case "core":
		*z = ZoneCore
	case "edge":
		*z = ZoneEdge
	case "ring":
		*z = ZoneRing
	default:
		return fmt.Errorf("unknown zone %q", b)
	}
	return nil
}

// Cell is one square of the crowd mesh. Counts holds the baseline people
// count for every time slot and is shared read-only once generated.
type Cell struct {
	ID      string    `json:"id"`
	Row     int       `json:"row"`
	Col     int       `json:"col"`
	Polygon [4]LatLng `json:"polygon"`
	Center  LatLng    `json:"center"`
	Counts  []int     `json:"counts"`
	Zone    Zone      `json:"zone"`
	Label   string    `json:"label"`
	IsCore  bool      `json:"is_core"`
	IsEdge  bool      `json:"is_edge"`
}

// CellView is a cell as displayed at one time slot: its baseline count and the
// count after the active scenario.
type CellView struct {
	Cell
	BaseCount int `json:"base_count"`
	Count     int `json:"count"`
}
