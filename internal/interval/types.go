package interval

import "math"

// Interval is a closed real interval [L, U]. The zero value is the
// degenerate point interval [0, 0].
type Interval struct {
	L float64
	U float64
}

// Full is the interval spanning all of R, the top element of the lattice.
func Full() Interval { return Interval{L: math.Inf(-1), U: math.Inf(1)} }

// Bottom is the canonical empty interval, the bottom element of the lattice.
func Bottom() Interval { return Interval{L: 1, U: 0} }

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval { return Interval{L: v, U: v} }

// IsBottom reports whether x denotes the empty set (L > U).
func (x Interval) IsBottom() bool { return x.L > x.U }

// down widens a value one ULP toward -Inf, the outward rounding used for
// every lower endpoint produced by this package.
func down(v float64) float64 { return math.Nextafter(v, math.Inf(-1)) }

// up widens a value one ULP toward +Inf, the outward rounding used for
// every upper endpoint produced by this package.
func up(v float64) float64 { return math.Nextafter(v, math.Inf(1)) }
