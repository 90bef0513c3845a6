package orchestrator

import (
	"errors"

	"github.com/mzanella-labs/silva/internal/treemodel"
)

// ErrDimensionMismatch indicates a sample's length does not match the
// model's feature-space size.
var ErrDimensionMismatch = errors.New("orchestrator: dimension mismatch")

// ModelKind tags which of Model's two variants is populated.
type ModelKind uint8

const (
	// KindTree holds a single decision tree, verified completely.
	KindTree ModelKind = iota
	// KindEnsemble holds a tree ensemble, verified by best-first search.
	KindEnsemble
)

// Model is a tagged variant over the two classifier shapes the verifier
// dispatches on. Tier is optional and applies to either variant: it
// constrains categorical one-hot feature groups during ensemble
// refinement and is ignored by the single-tree path.
type Model struct {
	Kind     ModelKind
	Tree     *treemodel.Tree
	Ensemble *treemodel.Ensemble
	Tier     treemodel.Tier
}

// NewTreeModel wraps a single tree as a Model. tier may be nil.
func NewTreeModel(t *treemodel.Tree, tier treemodel.Tier) (Model, error) {
	if err := tier.Validate(); err != nil {
		return Model{}, err
	}
	return Model{Kind: KindTree, Tree: t, Tier: tier}, nil
}

// NewEnsembleModel wraps an ensemble as a Model. tier may be nil.
func NewEnsembleModel(e *treemodel.Ensemble, tier treemodel.Tier) (Model, error) {
	if err := tier.Validate(); err != nil {
		return Model{}, err
	}
	return Model{Kind: KindEnsemble, Ensemble: e, Tier: tier}, nil
}

// NFeatures returns the model's feature-space dimension.
func (m Model) NFeatures() int {
	if m.Kind == KindTree {
		return m.Tree.NFeatures
	}
	return m.Ensemble.NFeatures
}

// Labels returns the model's label alphabet.
func (m Model) Labels() []string {
	if m.Kind == KindTree {
		return m.Tree.Labels
	}
	return m.Ensemble.Labels
}

// Classify evaluates x concretely under m.
func (m Model) Classify(x []float64) (treemodel.LabelSet, error) {
	if m.Kind == KindTree {
		return m.Tree.Classify(x)
	}
	return m.Ensemble.Classify(x)
}
