package ensemble_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/interval"
	"github.com/mzanella-labs/silva/internal/treemodel"
	"github.com/mzanella-labs/silva/internal/verify/ensemble"
)

// stumpOn builds a single-split tree over feature i at threshold k,
// left leaf predicting label 0, right leaf predicting label 1.
func stumpOn(feature int, k float64, nFeatures int) *treemodel.Tree {
	left := treemodel.NewLeafCount([]uint32{10, 0})
	right := treemodel.NewLeafCount([]uint32{0, 10})
	root := treemodel.NewSplit(feature, k, left, right)
	return &treemodel.Tree{Root: root, NFeatures: nFeatures, Labels: []string{"a", "b"}}
}

// leafOnlyTree builds a tree whose root is a leaf: every sample gets the
// same prediction regardless of feature values.
func leafOnlyTree(nFeatures int) *treemodel.Tree {
	return &treemodel.Tree{Root: treemodel.NewLeafCount([]uint32{10, 0}), NFeatures: nFeatures, Labels: []string{"a", "b"}}
}

func box(pairs ...float64) hyperrect.Box {
	b := make(hyperrect.Box, len(pairs)/2)
	for i := range b {
		b[i] = interval.Interval{L: pairs[2*i], U: pairs[2*i+1]}
	}
	return b
}

func TestTwoIdenticalTreesMatchSingleTreeVerdict(t *testing.T) {
	a := stumpOn(0, 0.5, 1)
	b := stumpOn(0, 0.5, 1)
	ens, err := treemodel.NewEnsemble([]*treemodel.Tree{a, b}, treemodel.VoteMax)
	require.NoError(t, err)

	labelsA := treemodel.NewLabelSet(0)

	stable, err := ensemble.Verify(context.Background(), ens, nil, box(-0.1, 0.1), labelsA)
	require.NoError(t, err)
	assert.Equal(t, ensemble.Stable, stable.Verdict)

	unstable, err := ensemble.Verify(context.Background(), ens, nil, box(-0.6, 0.6), labelsA)
	require.NoError(t, err)
	assert.Equal(t, ensemble.Unstable, unstable.Verdict)
}

// A second, splitting tree can tip a max-voting tie against a trivial
// always-label-0 tree once the region straddles the split's threshold.
func TestMaxVotingTieFlipsVerdict(t *testing.T) {
	alwaysZero := leafOnlyTree(1)
	splitter := stumpOn(0, 0, 1)
	ens, err := treemodel.NewEnsemble([]*treemodel.Tree{alwaysZero, splitter}, treemodel.VoteMax)
	require.NoError(t, err)

	labelsA := treemodel.NewLabelSet(0)
	region := box(-0.4, 0.4)

	res, err := ensemble.Verify(context.Background(), ens, nil, region, labelsA)
	require.NoError(t, err)
	assert.Equal(t, ensemble.Unstable, res.Verdict)
}

func TestSoftargmaxStableInsideOneSide(t *testing.T) {
	left := treemodel.NewLeafLog([]float64{math.Log(3), math.Log(1)}, 1.0)
	right := treemodel.NewLeafLog([]float64{math.Log(1), math.Log(3)}, 1.0)
	root := treemodel.NewSplit(0, 0.5, left, right)
	tree := &treemodel.Tree{Root: root, NFeatures: 1, Labels: []string{"a", "b"}}
	ens, err := treemodel.NewEnsemble([]*treemodel.Tree{tree}, treemodel.VoteSoftargmax)
	require.NoError(t, err)

	labelsA := treemodel.NewLabelSet(1) // class-1 side
	region := box(0.7, 0.9)             // strictly inside the right side

	res, err := ensemble.Verify(context.Background(), ens, nil, region, labelsA)
	require.NoError(t, err)
	assert.Equal(t, ensemble.Stable, res.Verdict)
}

// A tightly pre-constrained one-hot region (only the split feature is
// free, its groupmates already pinned to 0 by the perturbation itself)
// stays stable: the only reachable leaf is the one the sample's own
// one-hot encoding picks.
func TestTierConstrainedOneHotRegionIsStable(t *testing.T) {
	left := treemodel.NewLeafCount([]uint32{10, 0})
	right := treemodel.NewLeafCount([]uint32{0, 10})
	root := treemodel.NewSplit(1, 0.5, left, right)
	tree := &treemodel.Tree{Root: root, NFeatures: 3, Labels: []string{"a", "b"}}
	ens, err := treemodel.NewEnsemble([]*treemodel.Tree{tree}, treemodel.VoteMax)
	require.NoError(t, err)

	tier := treemodel.Tier{1, 1, 1}
	labelsA := treemodel.NewLabelSet(1) // one-hot (0,1,0) lands in the right leaf

	region := box(0, 0, 0.6, 1, 0, 0) // feature 1 is the only free coordinate, strictly on the active side
	res, err := ensemble.Verify(context.Background(), ens, tier, region, labelsA)
	require.NoError(t, err)
	assert.Equal(t, ensemble.Stable, res.Verdict)
}

func TestEmptyBoxTriviallyStable(t *testing.T) {
	a := stumpOn(0, 0.5, 1)
	ens, err := treemodel.NewEnsemble([]*treemodel.Tree{a}, treemodel.VoteMax)
	require.NoError(t, err)

	res, err := ensemble.Verify(context.Background(), ens, nil, box(1, 0), treemodel.NewLabelSet(0))
	require.NoError(t, err)
	assert.Equal(t, ensemble.Stable, res.Verdict)
}

func TestDeadlineYieldsUnknown(t *testing.T) {
	a := stumpOn(0, 0.5, 1)
	ens, err := treemodel.NewEnsemble([]*treemodel.Tree{a}, treemodel.VoteMax)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	res, err := ensemble.Verify(ctx, ens, nil, box(-0.6, 0.6), treemodel.NewLabelSet(0))
	require.NoError(t, err)
	assert.Equal(t, ensemble.Unknown, res.Verdict)
}
