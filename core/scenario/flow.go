package scenario

import (
	"github.com/AayushY02/Parking-MapAI/core/geo"
	"github.com/AayushY02/Parking-MapAI/core/model"
	"github.com/AayushY02/Parking-MapAI/internal/numeric"
)

// Flow colours per scenario.
const (
	PeakFlowColor    = "#9a4b3a"
	DemandFlowColor  = "#b08b2a"
	BalanceFlowColor = "#3f7f3b"
)

const (
	peakFlowLabel    = "低密度エリアへシフト"
	demandFlowLabel  = "需要に応じた誘導"
	balanceFlowLabel = "外縁へ再配分"

	// outwardKm is how far balance flows project beyond their hotspot.
	outwardKm = 0.85
	// balanceBaseline is the intensity a hotspot is redistributed down to.
	balanceBaseline = 70
)

// BuildFlowLines returns the flow vectors implied by the scenario. The result
// is never nil; it is empty for an empty id, an empty display or a context
// without hotspots.
func BuildFlowLines(id model.ScenarioID, cells []model.CellView, ctx model.ScenarioContext) []model.FlowLine {
	if id == model.ScenarioNone || len(cells) == 0 || len(ctx.Hotspots) == 0 {
		return []model.FlowLine{}
	}
	switch id {
	case model.ScenarioPeak:
		return peakPairing.flows(ctx)
	case model.ScenarioDemand:
		return demandPairing.flows(ctx)
	case model.ScenarioBalance:
		return outwardFlows(ctx)
	default:
		return []model.FlowLine{}
	}
}

// pairing links the top n hotspots to lowspots[(i+offset) mod L]. Weight is
// the intensity gap over norm, bounded to [lo, hi]. The curve on even indices
// bends toward evenDir and alternates from there.
type pairing struct {
	n, offset    int
	norm, lo, hi float64
	strength     float64
	evenDir      int
	color, label string
}

var (
	peakPairing = pairing{
		n: 3, norm: 130, lo: 0.45, hi: 1,
		strength: 0.25, evenDir: 1,
		color: PeakFlowColor, label: peakFlowLabel,
	}
	demandPairing = pairing{
		n: 2, offset: 1, norm: 140, lo: 0.4, hi: 0.95,
		strength: 0.2, evenDir: -1,
		color: DemandFlowColor, label: demandFlowLabel,
	}
)

func (p pairing) flows(ctx model.ScenarioContext) []model.FlowLine {
	if len(ctx.Lowspots) == 0 {
		return []model.FlowLine{}
	}
	out := make([]model.FlowLine, 0, p.n)
	for i, h := range ctx.Hotspots {
		if i == p.n {
			break
		}
		target := ctx.Lowspots[(i+p.offset)%len(ctx.Lowspots)]
		delta := max(0, h.Intensity-target.Intensity)
		out = append(out, model.FlowLine{
			From:   h.Center,
			To:     target.Center,
			Path:   geo.CurvePath(h.Center, target.Center, p.strength, alternate(i, p.evenDir)),
			Weight: numeric.Clamp(float64(delta)/p.norm, p.lo, p.hi),
			Color:  p.color,
			Label:  p.label,
			Value:  delta,
			Trend:  model.TrendDown,
		})
	}
	return out
}

// outwardFlows pushes each hotspot away from the grid centroid.
func outwardFlows(ctx model.ScenarioContext) []model.FlowLine {
	if ctx.GridCenter == nil {
		return []model.FlowLine{}
	}
	out := make([]model.FlowLine, 0, spotCount)
	for i, h := range ctx.Hotspots {
		if i == spotCount {
			break
		}
		heading := geo.Bearing(*ctx.GridCenter, h.Center)
		target := geo.Destination(h.Center, outwardKm, heading)
		delta := max(0, h.Intensity-balanceBaseline)
		out = append(out, model.FlowLine{
			From:   h.Center,
			To:     target,
			Path:   geo.CurvePath(h.Center, target, 0.28, alternate(i, 1)),
			Weight: numeric.Clamp(float64(delta)/120, 0.5, 1.2),
			Color:  BalanceFlowColor,
			Label:  balanceFlowLabel,
			Value:  delta,
			Trend:  model.TrendOut,
		})
	}
	return out
}

func alternate(i, evenDir int) int {
	if i%2 == 0 {
		return evenDir
	}
	return -evenDir
}
