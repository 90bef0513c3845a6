package ensemble

import (
	"context"

	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/search"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// Verdict is the outcome of an ensemble stability check. Unlike the
// single-tree verifier, UNKNOWN can occur here: the joint leaf space
// may exceed the per-sample wall-clock budget.
type Verdict uint8

const (
	Stable Verdict = iota
	Unstable
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case Unstable:
		return "UNSTABLE"
	case Unknown:
		return "UNKNOWN"
	default:
		return "STABLE"
	}
}

// Result carries the verdict and, for Unstable, a counterexample witness
// and the joint region it was drawn from.
type Result struct {
	Verdict Verdict
	Witness []float64
	Region  hyperrect.Box
}

// priority implements p(X) = -1e6*volume(H_X) + depth(X) + |Labels(X)\Lₐ|/K:
// higher is more promising. It favors smaller-volume,
// deeper decorators with more labels inconsistent with the concrete
// classification. search.Frontier pops the lowest priority first, so
// callers push -priority to explore the most promising decorator first.
func priority(x *Decorator, labelsA treemodel.LabelSet, k int) float64 {
	mismatch := 0
	for i := range x.Labels {
		if !labelsA.Contains(i) {
			mismatch++
		}
	}
	return -1e6*x.Box.Volume() + float64(x.Depth()) + float64(mismatch)/float64(k)
}

// Verify runs the best-first refinement search over ens
// starting from box, given the concrete label set labelsA the origin
// sample classified to. ctx's deadline is polled once per refine call;
// on expiry the search stops and reports Unknown. An empty (bottom) box
// is trivially stable.
func Verify(ctx context.Context, ens *treemodel.Ensemble, tier treemodel.Tier, box hyperrect.Box, labelsA treemodel.LabelSet) (Result, error) {
	if box.IsBottom() {
		return Result{Verdict: Stable}, nil
	}

	k := len(ens.Labels)
	root := NewRoot(box)
	root.Labels = DominantLabels(Scores(ens, root))

	frontier := search.NewFrontier[*Decorator]()
	frontier.Push(root, -priority(root, labelsA, k))

	for frontier.Len() > 0 {
		select {
		case <-ctx.Done():
			return Result{Verdict: Unknown}, nil
		default:
		}

		top, _ := frontier.Pop()
		outcome := refine(ens, tier, top, labelsA)
		if outcome.Unstable {
			return Result{Verdict: Unstable, Witness: outcome.Witness, Region: outcome.Region}, nil
		}

		for _, child := range outcome.Refined {
			frontier.Push(child, -priority(child, labelsA, k))
		}
	}

	return Result{Verdict: Stable}, nil
}
