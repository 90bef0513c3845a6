// Package hyperrect implements axis-aligned hyperrectangles (boxes): an
// n-dimensional generalization of interval.Interval, represented as an
// ordered slice of per-dimension intervals.
//
// A Box is never shared: each holder exclusively owns its slice, and
// mutation (writing a component in place) is only ever performed by the holder that
// created it. Clone produces an independent copy for callers that need to
// branch a box into two children without aliasing.
package hyperrect
