// Package singletree implements stability verification for a single
// decision tree. For one tree the abstract interpretation
// is complete: every reachable leaf is enumerated and checked, so the
// verdict is always STABLE or UNSTABLE, never UNKNOWN.
package singletree
