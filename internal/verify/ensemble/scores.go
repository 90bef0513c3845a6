package ensemble

import (
	"math"

	"github.com/mzanella-labs/silva/internal/interval"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// Scores computes the sound per-label score interval Sᵢ(H) for decorator
// d under ens.Voting: the exact contribution of every
// already-fixed leaf, combined with a sound overapproximation of every
// remaining (unexpanded) tree's contribution over d.Box.
func Scores(ens *treemodel.Ensemble, d *Decorator) []interval.Interval {
	switch ens.Voting {
	case treemodel.VoteAverage:
		return averageScores(ens, d)
	case treemodel.VoteSoftargmax:
		return softargmaxScores(ens, d)
	default:
		return maxScores(ens, d)
	}
}

// DominantLabels returns the labels not strictly dominated by another
// label's score interval: { i : no j with Sᵢ < Sⱼ }. This is a sound
// superset of the true label set.
func DominantLabels(scores []interval.Interval) treemodel.LabelSet {
	labels := make(treemodel.LabelSet, len(scores))
	for i, si := range scores {
		dominated := false
		for j, sj := range scores {
			if i == j {
				continue
			}
			if interval.Lt(si, sj) {
				dominated = true
				break
			}
		}
		if !dominated {
			labels.Add(i)
		}
	}
	return labels
}

func fixedVoteContribution(fixed []*treemodel.Node, nLabels int) []float64 {
	contrib := make([]float64, nLabels)
	for _, leaf := range fixed {
		for i := range leaf.Labels() {
			contrib[i]++
		}
	}
	return contrib
}

func maxScores(ens *treemodel.Ensemble, d *Decorator) []interval.Interval {
	nLabels := len(ens.Labels)
	fixed := fixedVoteContribution(d.FixedLeaves(), nLabels)
	scores := make([]interval.Interval, nLabels)
	for i := range scores {
		scores[i] = interval.Point(fixed[i])
	}

	for _, tr := range ens.Trees[d.Depth():] {
		leaves := treemodel.ReachableLeaves(tr.Root, d.Box)
		allArgmax := make([]bool, nLabels)
		anyArgmax := make([]bool, nLabels)
		for i := range allArgmax {
			allArgmax[i] = true
		}
		for _, leaf := range leaves {
			labels := leaf.Labels()
			for i := 0; i < nLabels; i++ {
				if labels.Contains(i) {
					anyArgmax[i] = true
				} else {
					allArgmax[i] = false
				}
			}
		}
		for i := 0; i < nLabels; i++ {
			lo, hi := 0.0, 0.0
			if allArgmax[i] {
				lo = 1
			}
			if anyArgmax[i] {
				hi = 1
			}
			scores[i] = interval.Add(scores[i], interval.Interval{L: lo, U: hi})
		}
	}
	return scores
}

func averageScores(ens *treemodel.Ensemble, d *Decorator) []interval.Interval {
	nLabels := len(ens.Labels)
	n := float64(len(ens.Trees))
	scores := make([]interval.Interval, nLabels)

	for i := range scores {
		scores[i] = interval.Point(0)
	}
	for _, leaf := range d.FixedLeaves() {
		p := leaf.Probabilities()
		for i, v := range p {
			scores[i] = interval.Add(scores[i], interval.Point(v/n))
		}
	}

	for _, tr := range ens.Trees[d.Depth():] {
		leaves := treemodel.ReachableLeaves(tr.Root, d.Box)
		if len(leaves) == 0 {
			continue
		}
		lo := make([]float64, nLabels)
		hi := make([]float64, nLabels)
		for i := range lo {
			lo[i] = math.Inf(1)
			hi[i] = math.Inf(-1)
		}
		for _, leaf := range leaves {
			p := leaf.Probabilities()
			for i, v := range p {
				lo[i] = math.Min(lo[i], v)
				hi[i] = math.Max(hi[i], v)
			}
		}
		for i := 0; i < nLabels; i++ {
			contrib := interval.Scale(1/n, interval.Interval{L: lo[i], U: hi[i]})
			scores[i] = interval.Add(scores[i], contrib)
		}
	}
	return scores
}

func softargmaxScores(ens *treemodel.Ensemble, d *Decorator) []interval.Interval {
	nLabels := len(ens.Labels)
	logits := make([]interval.Interval, nLabels)
	for i := range logits {
		logits[i] = interval.Point(0)
	}

	for _, leaf := range d.FixedLeaves() {
		for i, v := range leaf.LogScores {
			logits[i] = interval.Add(logits[i], interval.Point(v*leaf.Weight))
		}
	}

	for _, tr := range ens.Trees[d.Depth():] {
		leaves := treemodel.ReachableLeaves(tr.Root, d.Box)
		if len(leaves) == 0 {
			continue
		}
		lo := make([]float64, nLabels)
		hi := make([]float64, nLabels)
		for i := range lo {
			lo[i] = math.Inf(1)
			hi[i] = math.Inf(-1)
		}
		for _, leaf := range leaves {
			for i, v := range leaf.LogScores {
				w := v * leaf.Weight
				lo[i] = math.Min(lo[i], w)
				hi[i] = math.Max(hi[i], w)
			}
		}
		for i := 0; i < nLabels; i++ {
			logits[i] = interval.Add(logits[i], interval.Interval{L: lo[i], U: hi[i]})
		}
	}

	return normalizeSoftargmax(logits)
}

// normalizeSoftargmax turns summed logit intervals into normalized score
// intervals with outward rounding: the lower bound of
// label i pairs the smallest numerator with the largest denominator, and
// the upper bound pairs the largest numerator with the smallest
// denominator. The result is finally met with [0,1], the true range of
// any softmax output — including when a +Inf logit bound would otherwise
// push the quotient above 1 by floating-point construction.
func normalizeSoftargmax(logits []interval.Interval) []interval.Interval {
	// Every quantity here is non-negative, so lower bounds floor at 0.
	down := func(v float64) float64 { return math.Max(0, math.Nextafter(v, math.Inf(-1))) }
	up := func(v float64) float64 { return math.Nextafter(v, math.Inf(1)) }

	var sumExpU, sumExpL float64
	for _, s := range logits {
		sumExpU = up(sumExpU + up(math.Exp(s.U)))
		sumExpL = down(sumExpL + down(math.Exp(s.L)))
	}

	unit := interval.Interval{L: 0, U: 1}
	out := make([]interval.Interval, len(logits))
	for i, s := range logits {
		lo := down(down(math.Exp(s.L)) / sumExpU)
		hi := up(up(math.Exp(s.U)) / sumExpL)
		if math.IsNaN(lo) {
			lo = 0
		}
		if math.IsNaN(hi) {
			hi = 1
		}
		out[i] = interval.Meet(interval.Interval{L: lo, U: hi}, unit)
	}
	return out
}
