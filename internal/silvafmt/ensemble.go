package silvafmt

import (
	"fmt"
	"io"

	"github.com/mzanella-labs/silva/internal/treemodel"
)

// ParseEnsemble reads a tree ensemble in the "classifier-forest" format
// from r. The ensemble's voting scheme defaults to max, as in the
// reference loader; callers select a different scheme by rebuilding the
// Ensemble with treemodel.NewEnsemble and the desired VotingScheme.
func ParseEnsemble(r io.Reader) (*treemodel.Ensemble, error) {
	s := newScanner(r)

	if err := s.expect("classifier-forest"); err != nil {
		return nil, err
	}
	nTrees, err := s.uint()
	if err != nil {
		return nil, err
	}

	trees := make([]*treemodel.Tree, nTrees)
	for i := range trees {
		t, err := parseTree(s)
		if err != nil {
			return nil, err
		}
		trees[i] = t
	}

	if len(trees) == 0 {
		return nil, s.fail("forest declares zero trees")
	}

	e, err := treemodel.NewEnsemble(trees, treemodel.VoteMax)
	if err != nil {
		return nil, fmt.Errorf("silvafmt: %w: %w", err, ErrInvalidModel)
	}
	return e, nil
}
