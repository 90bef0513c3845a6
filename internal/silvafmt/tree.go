package silvafmt

import (
	"io"

	"github.com/mzanella-labs/silva/internal/treemodel"
)

// ParseTree reads a single decision tree in the "classifier-decision-tree"
// format from r.
func ParseTree(r io.Reader) (*treemodel.Tree, error) {
	return parseTree(newScanner(r))
}

func parseTree(s *scanner) (*treemodel.Tree, error) {
	if err := s.expect("classifier-decision-tree"); err != nil {
		return nil, err
	}

	nFeatures, err := s.uint()
	if err != nil {
		return nil, err
	}
	k, err := s.uint()
	if err != nil {
		return nil, err
	}

	labels := make([]string, k)
	for i := range labels {
		tok, err := s.token()
		if err != nil {
			return nil, s.fail("expected label %d, found end of input", i)
		}
		labels[i] = tok
	}

	root, err := parseNode(s, int(k))
	if err != nil {
		return nil, err
	}

	return &treemodel.Tree{Root: root, NFeatures: int(nFeatures), Labels: labels}, nil
}

func parseNode(s *scanner, k int) (*treemodel.Node, error) {
	tok, err := s.token()
	if err != nil {
		return nil, s.fail("expected a node, found end of input")
	}

	switch tok {
	case "LEAF":
		counts := make([]uint32, k)
		for i := range counts {
			v, err := s.uint()
			if err != nil {
				return nil, err
			}
			counts[i] = uint32(v)
		}
		return treemodel.NewLeafCount(counts), nil

	case "LEAF_LOGARITHMIC":
		scores := make([]float64, k)
		for i := range scores {
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			scores[i] = v
		}
		return treemodel.NewLeafLog(scores, 1.0), nil

	case "SPLIT":
		feature, err := s.uint()
		if err != nil {
			return nil, err
		}
		threshold, err := s.float()
		if err != nil {
			return nil, err
		}
		left, err := parseNode(s, k)
		if err != nil {
			return nil, err
		}
		right, err := parseNode(s, k)
		if err != nil {
			return nil, err
		}
		return treemodel.NewSplit(int(feature), threshold, left, right), nil

	default:
		return nil, s.fail("expected LEAF, LEAF_LOGARITHMIC or SPLIT, found %q", tok)
	}
}
