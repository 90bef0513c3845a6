package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/interval"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

func unconstrainedBox(n int) hyperrect.Box {
	b, _ := hyperrect.New(n)
	for i := range b {
		b[i] = interval.Interval{L: 0, U: 1}
	}
	return b
}

func TestApplyTierActiveClampsWholeGroup(t *testing.T) {
	tier := treemodel.Tier{1, 1, 1}
	box := unconstrainedBox(3)

	out := applyTier(box, tier, 0, true)
	assert.Equal(t, interval.Point(1), out[0])
	assert.Equal(t, interval.Point(0), out[1])
	assert.Equal(t, interval.Point(0), out[2])
}

func TestApplyTierInactivePinsLastSurvivor(t *testing.T) {
	tier := treemodel.Tier{1, 1, 1}
	box := hyperrect.Box{
		interval.Interval{L: 0, U: 1},
		interval.Point(0),
		interval.Interval{L: 0, U: 1},
	}

	out := applyTier(box, tier, 0, false)
	assert.Equal(t, interval.Point(0), out[0])
	assert.Equal(t, interval.Point(1), out[2])
}

func TestApplyTierUngroupedFeatureUntouched(t *testing.T) {
	tier := treemodel.Tier{0, 1, 1}
	box := unconstrainedBox(3)

	out := applyTier(box, tier, 0, true)
	assert.Equal(t, box[0], out[0])
}
