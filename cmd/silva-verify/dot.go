package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mzanella-labs/silva/internal/silvafmt"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// newDotCmd exposes treemodel.WriteDOT as a standalone debugging aid: load
// a single tree and render its structure as Graphviz DOT, the same
// rendering the reference implementation's decision_tree_graphviz.c
// produces, for visual inspection rather than verification.
func newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <classifier>",
		Short: "Render a single decision tree as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("silva-verify: cannot open classifier: %w", err)
			}
			defer f.Close()

			tree, ensemble, err := silvafmt.ParseClassifier(f)
			if err != nil {
				return fmt.Errorf("silva-verify: %w", err)
			}
			if tree == nil {
				if len(ensemble.Trees) == 0 {
					return fmt.Errorf("silva-verify: forest has no trees to render")
				}
				tree = ensemble.Trees[0]
			}

			return treemodel.WriteDOT(cmd.OutOrStdout(), tree)
		},
	}
}
