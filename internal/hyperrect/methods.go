package hyperrect

import (
	"math"
	"strings"

	"github.com/mzanella-labs/silva/internal/interval"
)

// Meet computes the componentwise intersection x ⊓ y. Returns
// ErrDimensionMismatch if the boxes differ in dimension. The result may be
// bottom (IsBottom true) without that being an error: an empty region is a
// legitimate, if uninteresting, outcome of a meet.
func Meet(x, y Box) (Box, error) {
	if len(x) != len(y) {
		return nil, ErrDimensionMismatch
	}

	r := make(Box, len(x))
	for i := range x {
		r[i] = interval.Meet(x[i], y[i])
	}
	return r, nil
}

// Join computes the componentwise convex hull x ⊔ y.
func Join(x, y Box) (Box, error) {
	if len(x) != len(y) {
		return nil, ErrDimensionMismatch
	}

	r := make(Box, len(x))
	for i := range x {
		r[i] = interval.Join(x[i], y[i])
	}
	return r, nil
}

// Volume returns the generalized volume of b, the product of each
// dimension's radius. A degenerate (zero-width) dimension collapses the
// whole product to zero.
func (b Box) Volume() float64 {
	v := 1.0
	for _, iv := range b {
		v *= iv.Radius()
	}
	return v
}

// Midpoint returns the center point of b, one coordinate per dimension.
func (b Box) Midpoint() []float64 {
	c := make([]float64, len(b))
	for i, iv := range b {
		c[i] = iv.Midpoint()
	}
	return c
}

// Dump renders b in the "[l1;u1] [l2;u2] ..." counterexample-file format
// from the design.
func (b Box) Dump() string {
	var sb strings.Builder
	for i, iv := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(iv.Dump())
	}
	return sb.String()
}

// ClipTo meets every dimension of b with the shared range [lo, hi],
// returning a new box. A dimension lying wholly outside [lo, hi] becomes
// empty, making the result bottom. Used to implement the LInfClipAll
// perturbation kind.
func (b Box) ClipTo(lo, hi float64) Box {
	r := make(Box, len(b))
	for i, iv := range b {
		r[i] = interval.Interval{
			L: interval.Clamp(iv.L, lo, math.Inf(1)),
			U: interval.Clamp(iv.U, math.Inf(-1), hi),
		}
	}
	return r
}
