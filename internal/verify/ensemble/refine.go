package ensemble

import (
	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/search"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// epsilon is the vanishingly small separation the right branch of a
// split adds to its threshold, keeping the two branches' boxes from
// overlapping at the boundary point itself.
const epsilon = 1e-12

// walkItem is one pending (box, node) pair of the inner per-tree walk
// refine performs while descending tree[d]. depth is the node's depth
// within that single tree, used by the split priority formula. Priority
// is higher-is-better (deepest, widest side first); since
// search.Frontier pops lowest-priority first, pushes below negate it.
type walkItem struct {
	box   hyperrect.Box
	node  *treemodel.Node
	depth int
}

// Outcome reports what refine decided, driving the outer best-first loop.
type Outcome struct {
	Unstable bool
	Witness  []float64
	Region   hyperrect.Box
	Refined  []*Decorator
}

// refine expands decorator x at depth d = x.Depth(). When
// every tree is already fixed, x is a complete assignment: its own
// (purely concrete) score decides STABLE-for-this-cell or UNSTABLE. When
// trees remain, tree[d] is walked with a priority-ordered joint queue;
// every reached leaf spawns a child decorator classified by
// DominantLabels and either dropped (robust), promoted to UNSTABLE, or
// appended to the caller's search frontier as refinable.
func refine(ens *treemodel.Ensemble, tier treemodel.Tier, x *Decorator, labelsA treemodel.LabelSet) Outcome {
	d := x.Depth()
	if d == len(ens.Trees) {
		labels := DominantLabels(Scores(ens, x))
		if !labels.Equal(labelsA) {
			return Outcome{Unstable: true, Witness: x.Box.Midpoint(), Region: x.Box}
		}
		return Outcome{}
	}

	tr := ens.Trees[d]
	q := search.NewFrontier[*walkItem]()
	q.Push(&walkItem{box: x.Box, node: tr.Root, depth: 0}, 0)

	var refined []*Decorator
	var unstableWitness []float64
	var unstableRegion hyperrect.Box

	for q.Len() > 0 {
		it, _ := q.Pop()
		n := it.node

		if n.IsLeaf() {
			child := x.addChild(it.box, n)
			child.Labels = DominantLabels(Scores(ens, child))

			switch {
			case !child.Labels.Intersects(labelsA):
				unstableWitness = it.box.Midpoint()
				unstableRegion = it.box
			case child.Labels.Equal(labelsA):
				// robust cell, dropped without further refinement
			default:
				refined = append(refined, child)
			}
			if unstableWitness != nil {
				break
			}
			continue
		}

		i := n.FeatureIndex
		k := n.Threshold
		h := it.box[i]
		radius := h.Radius()

		switch {
		case h.L <= k && k < h.U:
			left := it.box.Clone()
			left[i].U = min(left[i].U, k)
			left = applyTier(left, tier, i, false)

			right := it.box.Clone()
			right[i].L = max(left[i].U, k+epsilon)
			right = applyTier(right, tier, i, true)

			q.Push(&walkItem{box: left, node: n.Left, depth: it.depth + 1},
				-(float64(it.depth) + fraction(k-h.L, radius)))
			q.Push(&walkItem{box: right, node: n.Right, depth: it.depth + 1},
				-(float64(it.depth) + fraction(h.U-k, radius)))

		case h.U <= k:
			adjusted := applyTier(it.box, tier, i, false)
			q.Push(&walkItem{box: adjusted, node: n.Left, depth: it.depth + 1},
				-(float64(it.depth) + fraction(k-h.L, radius)))

		default: // h.L > k
			adjusted := applyTier(it.box, tier, i, true)
			q.Push(&walkItem{box: adjusted, node: n.Right, depth: it.depth + 1},
				-(float64(it.depth) + fraction(h.U-k, radius)))
		}
	}

	if unstableWitness != nil {
		return Outcome{Unstable: true, Witness: unstableWitness, Region: unstableRegion}
	}
	return Outcome{Refined: refined}
}

func fraction(width, radius float64) float64 {
	if radius == 0 {
		return 0
	}
	return width / radius
}
