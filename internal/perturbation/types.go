package perturbation

import (
	"errors"
	"strconv"

	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/interval"
)

func formatG(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// ErrDimensionMismatch indicates a sample's length does not match the
// dimension a Lower call was asked to produce a box for.
var ErrDimensionMismatch = errors.New("perturbation: dimension mismatch")

// Kind tags the variant held by a Perturbation.
type Kind uint8

const (
	// LInf is an unconstrained L-infinity ball of a given radius.
	LInf Kind = iota
	// LInfClipAll is an L-infinity ball additionally clipped to a shared
	// [Min, Max] range on every dimension.
	LInfClipAll
	// FromFile is an explicit, arbitrary per-dimension box read verbatim
	// from a perturbation file rather than derived from a radius.
	FromFile
)

// Perturbation is a closed, tagged variant over the perturbation kinds a
// sample's adversarial region can be built from.
type Perturbation struct {
	Kind Kind

	// Magnitude is the L-infinity ball radius, shared by both ball kinds.
	Magnitude float64

	// Min and Max bound every dimension; only meaningful for LInfClipAll.
	Min float64
	Max float64

	// Box is the explicit per-dimension region; only meaningful for FromFile.
	Box hyperrect.Box
}

// NewLInf builds an unconstrained L-infinity perturbation of the given radius.
func NewLInf(magnitude float64) Perturbation {
	return Perturbation{Kind: LInf, Magnitude: magnitude}
}

// NewLInfClipAll builds an L-infinity perturbation additionally clipped to
// [min, max] on every dimension.
func NewLInfClipAll(magnitude, min, max float64) Perturbation {
	return Perturbation{Kind: LInfClipAll, Magnitude: magnitude, Min: min, Max: max}
}

// NewFromFile builds a perturbation from an explicit, already-parsed box.
// The sample carried by the owning AdversarialRegion is used only to
// validate dimensionality; the box's bounds are taken verbatim.
func NewFromFile(box hyperrect.Box) Perturbation {
	return Perturbation{Kind: FromFile, Box: box}
}

// String renders p the way the reference implementation prints a
// perturbation on its options summary line.
func (p Perturbation) String() string {
	switch p.Kind {
	case LInfClipAll:
		return "L_inf_" + formatG(p.Magnitude) + " in [" + formatG(p.Min) + "; " + formatG(p.Max) + "]"
	case FromFile:
		return "from_file"
	default:
		return "L_inf_" + formatG(p.Magnitude)
	}
}

// AdversarialRegion is a sample together with the perturbation that bounds
// the region of points an adversary may choose around it.
type AdversarialRegion struct {
	Sample       []float64
	Perturbation Perturbation
}

// Lower turns r into the hyperrectangle the verifier searches. For both
// ball kinds every dimension widens to [x_i - magnitude, x_i + magnitude];
// LInfClipAll then meets every dimension with [Min, Max], which yields an
// empty (bottom) box when the ball lies outside that range, signalling an
// empty and therefore trivially stable region. FromFile returns a copy of
// its explicit box.
//
// nFeatures is the model's feature-space size; Lower rejects a sample
// whose length disagrees with it before any classifier sees the region.
func (r AdversarialRegion) Lower(nFeatures int) (hyperrect.Box, error) {
	n := len(r.Sample)
	if n != nFeatures {
		return nil, ErrDimensionMismatch
	}
	b := make(hyperrect.Box, n)

	switch r.Perturbation.Kind {
	case LInf:
		for i, x := range r.Sample {
			b[i] = interval.Interval{L: x - r.Perturbation.Magnitude, U: x + r.Perturbation.Magnitude}
		}
	case LInfClipAll:
		for i, x := range r.Sample {
			b[i] = interval.Interval{L: x - r.Perturbation.Magnitude, U: x + r.Perturbation.Magnitude}
		}
		b = b.ClipTo(r.Perturbation.Min, r.Perturbation.Max)
	case FromFile:
		if len(r.Perturbation.Box) != nFeatures {
			return nil, ErrDimensionMismatch
		}
		b = r.Perturbation.Box.Clone()
	}
	return b, nil
}
