package interval

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Add computes a sound overapproximation of x + y.
func Add(x, y Interval) Interval {
	return Interval{L: down(x.L + y.L), U: up(x.U + y.U)}
}

// Sub computes a sound overapproximation of x - y.
func Sub(x, y Interval) Interval {
	return Interval{L: down(x.L - y.U), U: up(x.U - y.L)}
}

// Mul computes a sound overapproximation of x * y.
//
// Zero absorbs: if either operand is the degenerate [0,0] interval, the
// result is exactly [0,0]. Otherwise the result branches on the sign of
// each operand's endpoints, taking the min/max of the four corner products
// only when both operands straddle zero (the general case), per the
// classical interval-multiplication case split.
func Mul(x, y Interval) Interval {
	if (x.L == 0 && x.U == 0) || (y.L == 0 && y.U == 0) {
		return Interval{}
	}

	switch {
	case x.L >= 0 && y.L >= 0:
		return Interval{L: down(x.L * y.L), U: up(x.U * y.U)}
	case x.L >= 0 && y.U <= 0:
		return Interval{L: down(x.U * y.L), U: up(x.L * y.U)}
	case x.L >= 0: // y straddles 0
		return Interval{L: down(x.U * y.L), U: up(x.U * y.U)}
	case x.U <= 0 && y.L >= 0:
		return Interval{L: down(x.L * y.U), U: up(x.U * y.L)}
	case x.U <= 0 && y.U <= 0:
		return Interval{L: down(x.U * y.U), U: up(x.L * y.L)}
	case x.U <= 0: // y straddles 0
		return Interval{L: down(x.L * y.U), U: up(x.L * y.L)}
	case y.L >= 0: // x straddles 0
		return Interval{L: down(x.L * y.U), U: up(x.U * y.U)}
	case y.U <= 0: // x straddles 0
		return Interval{L: down(x.U * y.L), U: up(x.L * y.L)}
	default: // both straddle 0
		return Interval{
			L: down(math.Min(x.L*y.U, x.U*y.L)),
			U: up(math.Max(x.L*y.L, x.U*y.U)),
		}
	}
}

// Pow raises x to a natural-number power via repeated sound multiplication.
// Pow(x, 0) is [1,1] regardless of x.
func Pow(x Interval, degree uint) Interval {
	if degree == 0 {
		return Point(1)
	}

	r := x
	for i := uint(1); i < degree; i++ {
		r = Mul(r, x)
	}
	return r
}

// Exp computes a sound overapproximation of e^x. exp is monotone, so the
// endpoints map through directly.
func Exp(x Interval) Interval {
	return Interval{L: down(math.Exp(x.L)), U: up(math.Exp(x.U))}
}

// Scale computes a sound overapproximation of s * x for a real scalar s,
// branching on the sign of s to keep the mapping from endpoints monotone.
func Scale(s float64, x Interval) Interval {
	if s >= 0 {
		return Interval{L: down(s * x.L), U: up(s * x.U)}
	}
	return Interval{L: down(s * x.U), U: up(s * x.L)}
}

// Translate computes a sound overapproximation of x + t for a real scalar t.
func Translate(x Interval, t float64) Interval {
	return Interval{L: down(x.L + t), U: up(x.U + t)}
}

// FMA computes a sound overapproximation of (alpha * x) + y in one step,
// branching on the sign of alpha exactly as Scale does.
func FMA(alpha float64, x, y Interval) Interval {
	if alpha >= 0 {
		return Interval{L: down(alpha*x.L + y.L), U: up(alpha*x.U + y.U)}
	}
	return Interval{L: down(alpha*x.U + y.L), U: up(alpha*x.L + y.U)}
}

// Meet computes the greatest lower bound (intersection) x ⊓ y.
// The result is Bottom whenever x and y do not overlap.
func Meet(x, y Interval) Interval {
	return Interval{L: math.Max(x.L, y.L), U: math.Min(x.U, y.U)}
}

// Join computes the least upper bound (convex hull) x ⊔ y.
func Join(x, y Interval) Interval {
	return Interval{L: math.Min(x.L, y.L), U: math.Max(x.U, y.U)}
}

// Lt reports whether x is strictly dominated by y, i.e. every point in x
// is strictly less than every point in y (x.U < y.L). Used to discard
// labels whose score interval cannot possibly tie or beat another label's.
func Lt(x, y Interval) bool { return x.U < y.L }

// Leq reports whether x is dominated by y (x.U <= y.L).
func Leq(x, y Interval) bool { return x.U <= y.L }

// Midpoint returns the center of x. The result carries no meaning for a
// Bottom interval.
func (x Interval) Midpoint() float64 { return (x.L + x.U) * 0.5 }

// Radius returns half the width of x.
func (x Interval) Radius() float64 { return (x.U - x.L) * 0.5 }

// String renders x as "[l; u]", or "bottom" if empty.
func (x Interval) String() string {
	if x.IsBottom() {
		return "bottom"
	}
	return fmt.Sprintf("[%g; %g]", x.L, x.U)
}

// Dump renders x in the "[l;u]" form used by counterexample output.
func (x Interval) Dump() string {
	if x.IsBottom() {
		return "bottom"
	}
	return fmt.Sprintf("[%g;%g]", x.L, x.U)
}

// Clamp restricts v to [lo, hi], generic over any ordered numeric type.
// Hyperrectangle clipping uses it on float64 bounds and report path
// truncation on int lengths.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
