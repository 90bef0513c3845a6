package ensemble

import (
	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/interval"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// applyTier enforces the one-hot invariant of feature i's tier group
// after it has just been refined to isActive. Features outside any group (tier[i] == 0) are untouched.
func applyTier(box hyperrect.Box, tier treemodel.Tier, featureIndex int, isActive bool) hyperrect.Box {
	if tier == nil || featureIndex >= len(tier) {
		return box
	}
	g := tier[featureIndex]
	if g == 0 {
		return box
	}

	out := box.Clone()
	members := tier.Group(g)

	if isActive {
		out[featureIndex] = interval.Point(1)
		for _, j := range members {
			if j != featureIndex {
				out[j] = interval.Point(0)
			}
		}
		return out
	}

	out[featureIndex] = interval.Point(0)

	var pinned = -1
	free := 0
	for _, j := range members {
		if out[j] == interval.Point(1) {
			return out // already resolved
		}
		if out[j] != interval.Point(0) {
			free++
			pinned = j
		}
	}
	if free == 1 {
		out[pinned] = interval.Point(1)
	}
	return out
}
