package treemodel

import "errors"

// Sentinel errors for model construction and evaluation.
var (
	// ErrArityMismatch indicates a split node was built without exactly two
	// children, or a leaf's score slice did not match the label count.
	ErrArityMismatch = errors.New("treemodel: arity mismatch")

	// ErrDimensionMismatch indicates a sample's length does not match the
	// tree's feature-space size.
	ErrDimensionMismatch = errors.New("treemodel: dimension mismatch")

	// ErrEmptyEnsemble indicates an ensemble was built with zero trees.
	ErrEmptyEnsemble = errors.New("treemodel: ensemble has no trees")

	// ErrHeterogeneousEnsemble indicates the trees in an ensemble disagree
	// on feature-space size or label alphabet.
	ErrHeterogeneousEnsemble = errors.New("treemodel: trees disagree on shape")

	// ErrMalformedTier indicates a tier vector groups features inconsistently.
	ErrMalformedTier = errors.New("treemodel: malformed tier grouping")
)

// NodeKind tags the variant held by a Node.
type NodeKind uint8

const (
	// NodeLeafCount is a leaf holding per-label sample counts.
	NodeLeafCount NodeKind = iota
	// NodeLeafLog is a leaf holding per-label logarithmic scores.
	NodeLeafLog
	// NodeSplit is an internal univariate split x_i <= k.
	NodeSplit
)

func (k NodeKind) String() string {
	switch k {
	case NodeLeafCount:
		return "leaf"
	case NodeLeafLog:
		return "leaf_logarithmic"
	case NodeSplit:
		return "split"
	default:
		return "unknown"
	}
}

// Node is a tagged variant over the three node kinds the design names.
// Only the fields relevant to Kind are meaningful; a Node is immutable
// after construction via NewLeafCount / NewLeafLog / NewSplit.
type Node struct {
	Kind NodeKind

	// LeafCount fields.
	Counts   []uint32
	NSamples uint32
	MaxCount uint32

	// LeafLog fields.
	LogScores []float64
	Weight    float64

	// Split fields.
	FeatureIndex int
	Threshold    float64
	Left         *Node
	Right        *Node

	// parent is a non-owning back-reference used only for witness
	// reconstruction; it is never traversed downward
	// and plays no role in Node ownership or teardown.
	parent *Node
}

// IsLeaf reports whether n is a leaf of either kind.
func (n *Node) IsLeaf() bool { return n.Kind != NodeSplit }

// Parent returns n's parent, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// VotingScheme selects how an Ensemble aggregates per-tree outputs into a
// single label set.
type VotingScheme uint8

const (
	// VoteMax counts, per label, the trees whose prediction is that label.
	VoteMax VotingScheme = iota
	// VoteAverage averages per-label leaf probabilities across trees.
	VoteAverage
	// VoteSoftargmax sums per-label logit leaves and normalizes with a
	// softmax-style transform.
	VoteSoftargmax
)

func (v VotingScheme) String() string {
	switch v {
	case VoteMax:
		return "max"
	case VoteAverage:
		return "average"
	case VoteSoftargmax:
		return "softargmax"
	default:
		return "unknown"
	}
}

// Tree is a univariate binary decision tree over a fixed feature space and
// label alphabet.
type Tree struct {
	Root      *Node
	NFeatures int
	Labels    []string
}

// Ensemble is an ordered collection of trees sharing a feature space and
// label alphabet, combined by a single VotingScheme.
type Ensemble struct {
	Trees     []*Tree
	NFeatures int
	Labels    []string
	Voting    VotingScheme
}

// Tier groups features into mutually one-hot categorical blocks. Tier[i]
// == 0 means feature i is ungrouped; Tier[i] == g > 0 means feature i
// belongs to group g, and every feature sharing group g must sum to
// exactly 1 within any valid concrete sample.
type Tier []int

// Group returns the indices of every feature sharing group g (g must be > 0).
func (t Tier) Group(g int) []int {
	var idx []int
	for i, tg := range t {
		if tg == g {
			idx = append(idx, i)
		}
	}
	return idx
}

// NumGroups returns the highest group id present in t, i.e. the number of
// tier groups (group ids are assumed dense, 1..NumGroups).
func (t Tier) NumGroups() int {
	max := 0
	for _, g := range t {
		if g > max {
			max = g
		}
	}
	return max
}

// Validate reports ErrMalformedTier if t assigns a negative group id, or
// if any group in 1..NumGroups has fewer than two member features: a
// one-hot constraint over zero or one features is not meaningful and
// indicates the tier vector was built incorrectly.
func (t Tier) Validate() error {
	for _, g := range t {
		if g < 0 {
			return ErrMalformedTier
		}
	}
	for g := 1; g <= t.NumGroups(); g++ {
		if len(t.Group(g)) < 2 {
			return ErrMalformedTier
		}
	}
	return nil
}
