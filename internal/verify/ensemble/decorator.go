package ensemble

import (
	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// Decorator is a node in the refinement derivation tree. It exclusively owns its box and its children; Parent is
// a non-owning back-reference used only to reconstruct a witness path.
type Decorator struct {
	Box    hyperrect.Box
	Leaf   *treemodel.Node // leaf reached to produce this decorator; nil at the root
	Parent *Decorator
	Labels treemodel.LabelSet
	Children []*Decorator

	// depth is the number of trees already fixed along this decorator's
	// path from the root, i.e. len(fixedLeaves).
	depth int

	// fixedLeaves holds, in tree order, the leaf each already-processed
	// tree resolved to. Its length equals depth.
	fixedLeaves []*treemodel.Node
}

// NewRoot builds the decorator tree's root: the full adversarial box,
// no trees fixed yet.
func NewRoot(box hyperrect.Box) *Decorator {
	return &Decorator{Box: box}
}

// Depth reports how many trees are already fixed along d's path.
func (d *Decorator) Depth() int { return d.depth }

// FixedLeaves returns the leaves fixed so far, one per tree in ensemble order.
func (d *Decorator) FixedLeaves() []*treemodel.Node { return d.fixedLeaves }

// addChild attaches a child decorator reached via leaf in the next tree,
// taking ownership of it.
func (d *Decorator) addChild(box hyperrect.Box, leaf *treemodel.Node) *Decorator {
	fixed := make([]*treemodel.Node, d.depth+1)
	copy(fixed, d.fixedLeaves)
	fixed[d.depth] = leaf

	child := &Decorator{
		Box:         box,
		Leaf:        leaf,
		Parent:      d,
		depth:       d.depth + 1,
		fixedLeaves: fixed,
	}
	d.Children = append(d.Children, child)
	return child
}

// Release drops d's box, iteratively tearing down its subtree to avoid
// recursive stack growth on deep refinement trees. Leaf attributes and
// the decorator shells themselves are retained for any still-live parent
// path reconstruction; only owned boxes are released.
func (d *Decorator) Release() {
	stack := []*Decorator{d}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n.Box = nil
		stack = append(stack, n.Children...)
	}
}
