package hyperrect

import (
	"errors"

	"github.com/mzanella-labs/silva/internal/interval"
)

// Sentinel errors for box operations.
var (
	// ErrDimensionMismatch indicates two boxes of different dimensionality
	// were combined.
	ErrDimensionMismatch = errors.New("hyperrect: dimension mismatch")

	// ErrEmptyDimension indicates a box of dimension zero was requested.
	ErrEmptyDimension = errors.New("hyperrect: dimension must be > 0")
)

// Box is an axis-aligned hyperrectangle: the Cartesian product of its
// per-dimension intervals. A zero-length Box is never valid; use New.
type Box []interval.Interval

// New allocates a Box of the given dimension with every component set to
// the full real line.
func New(n int) (Box, error) {
	if n <= 0 {
		return nil, ErrEmptyDimension
	}

	b := make(Box, n)
	for i := range b {
		b[i] = interval.Full()
	}
	return b, nil
}

// Dim returns the box's dimensionality.
func (b Box) Dim() int { return len(b) }

// IsBottom reports whether any component interval is empty, making the
// box's semantic set empty.
func (b Box) IsBottom() bool {
	for _, iv := range b {
		if iv.IsBottom() {
			return true
		}
	}
	return false
}

// Clone returns an independently owned copy of b.
func (b Box) Clone() Box {
	c := make(Box, len(b))
	copy(c, b)
	return c
}
