package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AayushY02/Parking-MapAI/core/model"
)

func newBaseline(t *testing.T) *Baseline {
	t.Helper()
	b, err := NewBaseline(DefaultConfig())
	require.NoError(t, err)
	return b
}

func TestNewBaseline(t *testing.T) {
	b := newBaseline(t)
	assert.Len(t, b.Slots, 15)
	assert.Equal(t, "11:00", b.Slots[0])
	assert.Equal(t, "14:30", b.Slots[14])
	assert.Len(t, b.Cells, 576)
	assert.Len(t, b.Lots, 60)
	assert.Len(t, b.Weights, 15)
}

func TestSnapshotBaselineIsIdentity(t *testing.T) {
	b := newBaseline(t)
	s, err := b.Snapshot(8, model.ScenarioNone)
	require.NoError(t, err)

	assert.Equal(t, "13:00", s.Slot)
	assert.Empty(t, s.Flows)
	assert.Nil(t, s.Context.GridCenter)
	for _, c := range s.Cells {
		require.Equal(t, c.BaseCount, c.Count)
	}
	for _, l := range s.Lots {
		require.Equal(t, l.BaseOccupancy, l.OccupancyValue)
		require.Equal(t, l.BaseSlotPrice, l.PriceValue)
	}
	assert.Equal(t, s.Impact.AvgBefore, s.Impact.AvgAfter)
	assert.Equal(t, 0, s.Impact.PeakDropPct)
	assert.Equal(t, "比較用のベースラインスナップショットを取得しました。", s.Impact.Narrative)
}

func TestSnapshotPeak(t *testing.T) {
	b := newBaseline(t)
	s, err := b.Snapshot(8, model.ScenarioPeak)
	require.NoError(t, err)

	require.Len(t, s.Context.Hotspots, 4)
	assert.Equal(t, 152, s.Context.Hotspots[0].Intensity)
	assert.Len(t, s.Flows, 3)
	assert.Equal(t, 152, s.Impact.PeakBefore)
	assert.Equal(t, 109, s.Impact.PeakAfter)
	assert.Equal(t, 28, s.Impact.PeakDropPct)
	assert.Less(t, s.Impact.AvgAfter, s.Impact.AvgBefore)

	p1 := s.Lots[0]
	assert.Equal(t, "P-01", p1.ID)
	assert.InDelta(t, 0.38269143641431586, p1.OccupancyValue, 1e-9)
	assert.Equal(t, 363, p1.PriceValue)
}

func TestSnapshotContextUsesBaselineCounts(t *testing.T) {
	b := newBaseline(t)
	s, err := b.Snapshot(8, model.ScenarioBalance)
	require.NoError(t, err)
	require.Len(t, s.Flows, 4)
	assert.Equal(t, 82, s.Flows[0].Value)
}

func TestSnapshotErrors(t *testing.T) {
	b := newBaseline(t)
	_, err := b.Snapshot(15, model.ScenarioPeak)
	assert.True(t, errors.Is(err, ErrTimeIndex))
	_, err = b.Snapshot(-1, model.ScenarioNone)
	assert.True(t, errors.Is(err, ErrTimeIndex))
	_, err = b.Snapshot(3, "surge")
	assert.True(t, errors.Is(err, ErrUnknownScenario))
}

func TestSeries(t *testing.T) {
	b := newBaseline(t)
	s, err := b.Series(model.ScenarioDemand)
	require.NoError(t, err)
	require.Len(t, s.Impacts, 15)
	require.Len(t, s.Before, 15)
	require.Len(t, s.After, 15)
	assert.Len(t, s.Before[0].Counts, 576)
	assert.Len(t, s.After[14].Prices, 60)

	snap, err := b.Snapshot(5, model.ScenarioDemand)
	require.NoError(t, err)
	assert.Equal(t, snap.Impact, s.Impacts[5])

	_, err = b.Series("surge")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestEngineMemoizes(t *testing.T) {
	e := NewEngine(newBaseline(t))
	a, err := e.Snapshot(2, model.ScenarioPeak)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Cached())
	b, err := e.Snapshot(2, model.ScenarioPeak)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Cached())
	assert.Equal(t, a, b)

	_, err = e.Snapshot(99, model.ScenarioPeak)
	assert.Error(t, err)
	assert.Equal(t, 1, e.Cached())
}

func TestSweep(t *testing.T) {
	e := NewEngine(newBaseline(t))
	snaps, err := e.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, snaps, 4*15)
	assert.Equal(t, 60, e.Cached())

	ids := Scenarios()
	for i, s := range snaps {
		assert.Equal(t, ids[i/15], s.Scenario)
		assert.Equal(t, i%15, s.TimeIndex)
	}

	direct, err := e.Baseline().Snapshot(7, model.ScenarioBalance)
	require.NoError(t, err)
	assert.Equal(t, direct, snaps[3*15+7])
}

func TestSweepCancelled(t *testing.T) {
	e := NewEngine(newBaseline(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Sweep(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
