package silvafmt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mzanella-labs/silva/internal/treemodel"
)

// ParseClassifier reads either a single tree or a forest from r, dispatching
// on the header token the way the reference classifier loader peeks at
// the first token before rewinding. Exactly one of the two return values
// is non-nil on success.
func ParseClassifier(r io.Reader) (*treemodel.Tree, *treemodel.Ensemble, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("silvafmt: cannot read classifier: %w", err)
	}

	s := newScanner(bytes.NewReader(content))
	header, err := s.token()
	if err != nil {
		return nil, nil, s.fail("expected a classifier header, found end of input")
	}

	switch header {
	case "classifier-decision-tree":
		t, err := ParseTree(bytes.NewReader(content))
		return t, nil, err
	case "classifier-forest":
		e, err := ParseEnsemble(bytes.NewReader(content))
		return nil, e, err
	default:
		return nil, nil, s.fail("unsupported classifier header %q", header)
	}
}
