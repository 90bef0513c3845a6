// Package interval implements outward-rounded real interval arithmetic.
//
// An Interval{L, U} denotes the closed real subset [L, U]. L > U encodes
// the empty interval (bottom). Every arithmetic operation in this package
// is a sound overapproximation of its real-valued counterpart: for any
// concrete a in x and b in y, op(a, b) lies in Op(x, y). Soundness is
// obtained by widening each endpoint outward with math.Nextafter rather
// than by manipulating the FPU rounding mode, since the Go runtime offers
// no portable control over it (see DESIGN.md).
package interval
