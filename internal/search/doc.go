// Package search implements the generic best-first priority queue shared
// by every search in this module: a min-heap frontier ordered by an
// externally supplied priority, FIFO among ties, in the container/heap
// shape of a Dijkstra-style min-heap.
//
// Frontier exposes the queue directly (Push/Pop) for callers whose
// control flow doesn't reduce to a single Goal/Expand loop. The ensemble
// verifier's outer decorator search (internal/verify/ensemble's Verify)
// and inner per-tree walk (refine's queue of walkItems) both push and pop a
// Frontier instead of reimplementing heap.Interface, negating their
// higher-is-better priorities since Frontier pops lowest first.
//
// Driver wraps a Frontier with Priority/Goal/Expand callbacks to drive a
// complete single-result search in one call, for searches simple enough
// to fit that shape. The package has no depth-first driver.
package search
