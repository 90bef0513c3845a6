package orchestrator

import (
	"github.com/mzanella-labs/silva/internal/interval"
	"github.com/mzanella-labs/silva/internal/treemodel"
)

// Category cross-classifies a sample's verdict against whether its
// concrete prediction agreed with the dataset's ground-truth label,
// yielding the five-way breakdown the reference report prints alongside
// STABLE/UNSTABLE/UNKNOWN.
type Category string

const (
	Robust     Category = "ROBUST"
	Vulnerable Category = "VULNERABLE"
	Fragile    Category = "FRAGILE"
	Broken     Category = "BROKEN"
	NoInfo     Category = "NO-INFO"
)

// Classify derives a sample's Category from its StabilityStatus and
// whether its concrete prediction was correct.
func Classify(status StabilityStatus, isCorrect bool) Category {
	switch status.Result {
	case Stable:
		if isCorrect {
			return Robust
		}
		return Vulnerable
	case Unstable:
		if isCorrect {
			return Fragile
		}
		return Broken
	default:
		return NoInfo
	}
}

// IsCorrect reports whether labelsA is the unique concrete prediction and
// it names groundTruth.
func IsCorrect(labelsA treemodel.LabelSet, labelTable []string, groundTruth string) bool {
	if len(labelsA) != 1 {
		return false
	}
	for i := range labelsA {
		return labelTable[i] == groundTruth
	}
	return false
}

// TruncatePath shortens a long path for display, keeping its trailing
// maxLen-3 characters and prefixing a leading ellipsis, the way the
// reference report truncates classifier/dataset paths in its table.
func TruncatePath(path string, maxLen int) string {
	budget := interval.Clamp(maxLen-3, 0, len(path))
	if len(path) <= budget {
		return path
	}
	return "..." + path[len(path)-budget:]
}

// Summary accumulates run-wide counts for the final aggregate line.
type Summary struct {
	Size       int
	Correct    int
	Stable     int
	Unstable   int
	Robust     int
	Fragile    int
	Vulnerable int
	Broken     int
}

// Add folds one sample's status and category into the running summary.
func (s *Summary) Add(status StabilityStatus, isCorrect bool, category Category) {
	s.Size++
	if isCorrect {
		s.Correct++
	}
	switch status.Result {
	case Stable:
		s.Stable++
	case Unstable:
		s.Unstable++
	}
	switch category {
	case Robust:
		s.Robust++
	case Fragile:
		s.Fragile++
	case Vulnerable:
		s.Vulnerable++
	case Broken:
		s.Broken++
	}
}

// NoInfo returns the count of samples whose verdict was Unknown, derived
// rather than tracked directly since it is always Size - Stable - Unstable.
func (s Summary) NoInfo() int { return s.Size - s.Stable - s.Unstable }

// Wrong returns the count of samples whose concrete prediction disagreed
// with the dataset's ground truth.
func (s Summary) Wrong() int { return s.Size - s.Correct }
