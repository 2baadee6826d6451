package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceWeights = []float64{
	0.4251395851335357,
	0.48871725337425803,
	0.559640088919033,
	0.6440853605237522,
	0.7495932366297571,
	0.8722988643452712,
	0.9854653951905913,
	1.04451313544901,
	1.0131759409094594,
	0.8924174829918781,
	0.7250636466969254,
	0.5702074025542259,
	0.46985964784960976,
	0.43355596002172514,
	0.4454565318143415,
}

func TestWeightsMatchReferenceTable(t *testing.T) {
	got := Weights(SlotCount)
	require.Len(t, got, SlotCount)
	for i, w := range referenceWeights {
		assert.InDelta(t, w, got[i], 1e-6, "slot %d", i)
	}
}

func TestWeightsBounds(t *testing.T) {
	for _, n := range []int{2, 7, 96} {
		for i, w := range Weights(n) {
			if w < 0.35 || w > 1.05 {
				t.Fatalf("n=%d slot %d weight %v out of bounds", n, i, w)
			}
		}
	}
}

func TestWeightsPrecondition(t *testing.T) {
	assert.Panics(t, func() { Weights(1) })
	assert.Panics(t, func() { Weights(0) })
}

func TestLabels(t *testing.T) {
	labels := Labels(SlotCount)
	require.Len(t, labels, SlotCount)
	assert.Equal(t, "11:00", labels[0])
	assert.Equal(t, "13:00", labels[8])
	assert.Equal(t, "14:30", labels[14])
}
