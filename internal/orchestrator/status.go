package orchestrator

import (
	"time"

	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// Verdict is the outcome of a per-sample stability check, unified across
// the single-tree and ensemble verifiers.
type Verdict uint8

const (
	Stable Verdict = iota
	Unstable
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case Unstable:
		return "UNSTABLE"
	case Unknown:
		return "UNKNOWN"
	default:
		return "STABLE"
	}
}

// StabilityStatus is the per-sample result the orchestrator produces: the
// origin sample and its concrete labels, the verdict, a witness and its
// enclosing region when Unstable, and how long the check took.
type StabilityStatus struct {
	SampleA []float64
	LabelsA treemodel.LabelSet
	SampleB []float64
	Region  hyperrect.Box
	Result  Verdict
	Elapsed time.Duration
}
