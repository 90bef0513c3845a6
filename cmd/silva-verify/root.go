package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree: verify runs the stability check,
// dot emits a loaded tree's structure for visual inspection.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "silva-verify",
		Short:         "Verify robustness of a decision tree or forest classifier",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newVerifyCmd())
	root.AddCommand(newDotCmd())
	return root
}
