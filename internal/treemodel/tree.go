package treemodel

import (
	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/interval"
)

// Classify descends t on a single concrete point, following the unique
// root-to-leaf path the design guarantees exists, and returns that leaf's
// label set.
func (t *Tree) Classify(x []float64) (LabelSet, error) {
	if len(x) != t.NFeatures {
		return nil, ErrDimensionMismatch
	}

	n := t.Root
	for !n.IsLeaf() {
		if x[n.FeatureIndex] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Labels(), nil
}

// ReachableLeaves enumerates every leaf reachable from t's root under box:
// a split's left child is descended into iff box is consistent with
// x_i <= k somewhere in its interval (box[i].L <= k), and its right child
// iff box is consistent with x_i > k somewhere (box[i].U > k). Both sides
// may be reachable from the same split when box straddles the threshold.
func ReachableLeaves(root *Node, box hyperrect.Box) []*Node {
	var leaves []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
			return
		}

		h := box[n.FeatureIndex]
		if h.L <= n.Threshold {
			walk(n.Left)
		}
		if h.U > n.Threshold {
			walk(n.Right)
		}
	}
	walk(root)
	return leaves
}

// LeafBox returns the hyperrectangle restriction a single leaf imposes on
// an initially-unconstrained region, by walking the leaf's parent chain to
// the root and meeting in every ancestor split's half-space. The
// single-tree verifier uses it to reconstruct a witness box; the ensemble
// verifier does not call it.
func LeafBox(leaf *Node, dim int) (hyperrect.Box, error) {
	b, err := hyperrect.New(dim)
	if err != nil {
		return nil, err
	}

	child := leaf
	for p := leaf.Parent(); p != nil; p, child = p.Parent(), p {
		i := p.FeatureIndex
		if p.Left == child {
			b[i] = interval.Interval{L: b[i].L, U: min(b[i].U, p.Threshold)}
		} else {
			// Symmetric form per the threshold's recommended reconstruction:
			// Hi.l = max(Hi.l, k), not max(Hi.u, k). This is intentionally
			// imprecise at the boundary point k itself, trading a sliver of
			// over-approximation for a simple, always-sound update.
			b[i] = interval.Interval{L: max(b[i].L, p.Threshold), U: b[i].U}
		}
	}
	return b, nil
}
