package orchestrator

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mzanella-labs/silva/internal/perturbation"
	"github.com/mzanella-labs/silva/internal/verify/ensemble"
	"github.com/mzanella-labs/silva/internal/verify/singletree"
)

// VerifySample classifies x concretely under m, lowers pert around x, and
// dispatches to the verifier matching m.Kind. A per-sample wall-clock
// budget of timeout applies only to the ensemble path, the single-tree
// path being exhaustive and therefore always terminating on its own.
//
// logger receives one structured event per sample: info on completion,
// debug when the verdict is Unknown. Timeouts are never logged as errors,
// matching the non-fatal treatment the ensemble verifier itself gives
// them.
func VerifySample(ctx context.Context, m Model, sampleID int, x []float64, pert perturbation.Perturbation, timeout time.Duration, logger zerolog.Logger) (StabilityStatus, error) {
	start := time.Now()

	if len(x) != m.NFeatures() {
		return StabilityStatus{}, ErrDimensionMismatch
	}

	labelsA, err := m.Classify(x)
	if err != nil {
		return StabilityStatus{}, err
	}

	region := perturbation.AdversarialRegion{Sample: x, Perturbation: pert}
	box, err := region.Lower(m.NFeatures())
	if err != nil {
		return StabilityStatus{}, err
	}

	status := StabilityStatus{SampleA: x, LabelsA: labelsA}

	switch m.Kind {
	case KindTree:
		res, err := singletree.Verify(m.Tree, box, labelsA)
		if err != nil {
			return StabilityStatus{}, err
		}
		if res.Verdict == singletree.Unstable {
			status.Result = Unstable
			status.SampleB = res.Witness
			status.Region = res.Region
		} else {
			status.Result = Stable
		}

	case KindEnsemble:
		runCtx := ctx
		var cancel context.CancelFunc
		if timeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		res, err := ensemble.Verify(runCtx, m.Ensemble, m.Tier, box, labelsA)
		if err != nil {
			return StabilityStatus{}, err
		}
		switch res.Verdict {
		case ensemble.Unstable:
			status.Result = Unstable
			status.SampleB = res.Witness
			status.Region = res.Region
		case ensemble.Unknown:
			status.Result = Unknown
		default:
			status.Result = Stable
		}
	}

	status.Elapsed = time.Since(start)

	event := logger.Info()
	if status.Result == Unknown {
		event = logger.Debug()
	}
	event.
		Int("sample_id", sampleID).
		Str("result", status.Result.String()).
		Dur("elapsed", status.Elapsed).
		Msg("sample verified")

	return status, nil
}
