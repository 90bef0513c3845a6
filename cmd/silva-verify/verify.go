package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mzanella-labs/silva/internal/dataset"
	"github.com/mzanella-labs/silva/internal/orchestrator"
	"github.com/mzanella-labs/silva/internal/silvafmt"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// labelsMinSize is the minimum column width reserved for a sample's
// concrete label set in the per-sample table, matching LABELS_MIN_SIZE.
const labelsMinSize = 16

func newVerifyCmd() *cobra.Command {
	var (
		maxPrintLength   int
		votingName       string
		abstractionName  string
		sampleTimeout    time.Duration
		seed             int64
		counterexamples  string
		pert             perturbationOptions
	)

	cmd := &cobra.Command{
		Use:   "verify <classifier> <dataset>",
		Short: "Check whether every sample's adversarial neighborhood classifies stably",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if abstractionName != "hyperrectangle" {
				return fmt.Errorf("silva-verify: unsupported abstraction %q (only hyperrectangle is implemented end-to-end)", abstractionName)
			}

			voting, err := parseVoting(votingName)
			if err != nil {
				return err
			}
			perturbationSpec, err := pert.resolve()
			if err != nil {
				return err
			}

			classifierPath, datasetPath := args[0], args[1]

			model, err := loadModel(classifierPath, voting)
			if err != nil {
				return err
			}
			ds, err := loadDataset(datasetPath)
			if err != nil {
				return err
			}

			var out *os.File
			if counterexamples != "" {
				out, err = os.Create(counterexamples)
				if err != nil {
					return fmt.Errorf("silva-verify: cannot open counterexamples file: %w", err)
				}
				defer out.Close()
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-*s %-*s %8s %8s %*s %10s %10s\n",
				maxPrintLength, "Classifier",
				maxPrintLength, "Dataset",
				"ID", "Label",
				labelsMinSize, "Concrete",
				"Result", "Time (s)",
			)

			logger := zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger()

			var summary orchestrator.Summary
			start := time.Now()
			for i, row := range ds.Rows {
				status, err := orchestrator.VerifySample(context.Background(), model, i, row, perturbationSpec, sampleTimeout, logger)
				if err != nil {
					return fmt.Errorf("silva-verify: sample %d: %w", i, err)
				}

				groundTruth := ds.Labels[i]
				correct := orchestrator.IsCorrect(status.LabelsA, model.Labels(), groundTruth)
				category := orchestrator.Classify(status, correct)
				summary.Add(status, correct, category)

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %8d %8s %*s %10s %10g\n",
					orchestrator.TruncatePath(classifierPath, maxPrintLength),
					orchestrator.TruncatePath(datasetPath, maxPrintLength),
					i, groundTruth,
					labelsMinSize, labelsString(status.LabelsA, model.Labels()),
					category,
					status.Elapsed.Seconds(),
				)

				if out != nil && status.Result == orchestrator.Unstable {
					fmt.Fprintf(out, "%d: %s\n", i, status.Region.Dump())
				}
			}
			elapsed := time.Since(start)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[SUMMARY] %10s %10s %10s %10s %10s %10s %10s %10s %10s %12s %10s\n",
				"Size", "Time (s)", "Correct", "Wrong", "Stable", "Unstable",
				"No info", "Robust", "Fragile", "Vulnerable", "Broken",
			)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[SUMMARY] %10d %10g %10d %10d %10d %10d %10d %10d %10d %12d %10d\n",
				summary.Size, elapsed.Seconds(), summary.Correct, summary.Wrong(),
				summary.Stable, summary.Unstable, summary.NoInfo(),
				summary.Robust, summary.Fragile, summary.Vulnerable, summary.Broken,
			)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&maxPrintLength, "max-print-length", 32, "maximum number of characters to print for long strings")
	flags.StringVar(&votingName, "voting", "max", "voting scheme to use for forests (max, average, softargmax)")
	flags.StringVar(&abstractionName, "abstraction", "hyperrectangle", "abstract domain to use (only hyperrectangle is supported end-to-end)")
	flags.StringVar(&pert.kind, "perturbation", "l_inf", "perturbation kind: l_inf, l_inf-clip-all, from_file")
	flags.Float64Var(&pert.magnitude, "epsilon", 0, "perturbation magnitude for l_inf and l_inf-clip-all")
	flags.Float64Var(&pert.clipMin, "clip-min", 0, "lower clip bound for l_inf-clip-all")
	flags.Float64Var(&pert.clipMax, "clip-max", 0, "upper clip bound for l_inf-clip-all")
	flags.StringVar(&pert.boxPath, "perturbation-file", "", "file holding an explicit per-dimension box for the from_file perturbation kind")
	flags.DurationVar(&sampleTimeout, "sample-timeout", time.Second, "maximum allowed execution time for each sample")
	flags.Int64Var(&seed, "seed", 42, "seed for random number generation, reserved for future sampling use")
	flags.StringVar(&counterexamples, "counterexamples-out", "", "path to append one line per UNSTABLE sample's counterexample region")

	return cmd
}

func parseVoting(name string) (treemodel.VotingScheme, error) {
	switch name {
	case "max":
		return treemodel.VoteMax, nil
	case "average":
		return treemodel.VoteAverage, nil
	case "softargmax":
		return treemodel.VoteSoftargmax, nil
	default:
		return 0, fmt.Errorf("silva-verify: unsupported voting scheme %q", name)
	}
}

func loadModel(path string, voting treemodel.VotingScheme) (orchestrator.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return orchestrator.Model{}, fmt.Errorf("silva-verify: cannot open classifier: %w", err)
	}
	defer f.Close()

	tree, ensemble, err := silvafmt.ParseClassifier(f)
	if err != nil {
		return orchestrator.Model{}, fmt.Errorf("silva-verify: %w", err)
	}

	if tree != nil {
		m, err := orchestrator.NewTreeModel(tree, nil)
		if err != nil {
			return orchestrator.Model{}, fmt.Errorf("silva-verify: %w", err)
		}
		return m, nil
	}

	rescored, err := treemodel.NewEnsemble(ensemble.Trees, voting)
	if err != nil {
		return orchestrator.Model{}, fmt.Errorf("silva-verify: %w", err)
	}
	m, err := orchestrator.NewEnsembleModel(rescored, nil)
	if err != nil {
		return orchestrator.Model{}, fmt.Errorf("silva-verify: %w", err)
	}
	return m, nil
}

func loadDataset(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("silva-verify: cannot open dataset: %w", err)
	}
	defer f.Close()

	ds, err := dataset.Load(f)
	if err != nil {
		return nil, fmt.Errorf("silva-verify: %w", err)
	}
	return ds, nil
}

// labelsString renders a sample's concrete label set as a comma-joined
// list of names, the table-cell counterpart of print_labels.
func labelsString(labels treemodel.LabelSet, table []string) string {
	return strings.Join(labels.Names(table), ",")
}
