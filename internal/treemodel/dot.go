package treemodel

import (
	"fmt"
	"io"
	"strconv"
)

// WriteDOT renders t as a Graphviz DOT digraph, for ad hoc visual
// inspection of a loaded model. It is a debugging aid only; nothing in
// the verifier depends on its output.
func WriteDOT(w io.Writer, t *Tree) error {
	if _, err := fmt.Fprintln(w, "digraph tree {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  node [shape=box];"); err != nil {
		return err
	}

	id := 0
	var walk func(n *Node) int
	walk = func(n *Node) int {
		my := id
		id++

		switch n.Kind {
		case NodeSplit:
			fmt.Fprintf(w, "  n%d [label=\"x%d <= %v\"];\n", my, n.FeatureIndex, n.Threshold)
			l := walk(n.Left)
			r := walk(n.Right)
			fmt.Fprintf(w, "  n%d -> n%d [label=\"left\"];\n", my, l)
			fmt.Fprintf(w, "  n%d -> n%d [label=\"right\"];\n", my, r)
		case NodeLeafCount:
			fmt.Fprintf(w, "  n%d [label=\"%s\",style=filled];\n", my, countsLabel(n.Counts))
		case NodeLeafLog:
			fmt.Fprintf(w, "  n%d [label=\"%s\",style=filled];\n", my, scoresLabel(n.LogScores))
		}
		return my
	}
	walk(t.Root)

	_, err := fmt.Fprintln(w, "}")
	return err
}

func countsLabel(counts []uint32) string {
	s := "["
	for i, c := range counts {
		if i > 0 {
			s += ","
		}
		s += strconv.FormatUint(uint64(c), 10)
	}
	return s + "]"
}

func scoresLabel(scores []float64) string {
	s := "["
	for i, v := range scores {
		if i > 0 {
			s += ","
		}
		s += strconv.FormatFloat(v, 'g', 4, 64)
	}
	return s + "]"
}
