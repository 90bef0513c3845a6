package treemodel

// NewEnsemble validates and assembles trees sharing a feature space and
// label alphabet into a single ensemble under voting.
func NewEnsemble(trees []*Tree, voting VotingScheme) (*Ensemble, error) {
	if len(trees) == 0 {
		return nil, ErrEmptyEnsemble
	}

	nf := trees[0].NFeatures
	labels := trees[0].Labels
	for _, t := range trees[1:] {
		if t.NFeatures != nf || len(t.Labels) != len(labels) {
			return nil, ErrHeterogeneousEnsemble
		}
		for i, name := range t.Labels {
			if name != labels[i] {
				return nil, ErrHeterogeneousEnsemble
			}
		}
	}

	return &Ensemble{Trees: trees, NFeatures: nf, Labels: labels, Voting: voting}, nil
}

// Classify evaluates every tree on x concretely and aggregates their
// per-tree leaf labels under e.Voting.
func (e *Ensemble) Classify(x []float64) (LabelSet, error) {
	scores := make([]float64, len(e.Labels))

	switch e.Voting {
	case VoteMax:
		for _, t := range e.Trees {
			leafSet, err := t.Classify(x)
			if err != nil {
				return nil, err
			}
			for i := range leafSet {
				scores[i]++
			}
		}
	case VoteAverage:
		for _, t := range e.Trees {
			n := t.Root
			if len(x) != t.NFeatures {
				return nil, ErrDimensionMismatch
			}
			for !n.IsLeaf() {
				if x[n.FeatureIndex] <= n.Threshold {
					n = n.Left
				} else {
					n = n.Right
				}
			}
			p := n.Probabilities()
			for i, v := range p {
				scores[i] += v
			}
		}
	case VoteSoftargmax:
		for _, t := range e.Trees {
			n := t.Root
			if len(x) != t.NFeatures {
				return nil, ErrDimensionMismatch
			}
			for !n.IsLeaf() {
				if x[n.FeatureIndex] <= n.Threshold {
					n = n.Left
				} else {
					n = n.Right
				}
			}
			for i, v := range n.LogScores {
				scores[i] += v * n.Weight
			}
		}
	}

	return argmaxFloat64(scores), nil
}
