// Package silva is a sound stability verifier for tree-based classifiers.
//
// Given a trained decision tree or forest and a sample x, it decides
// whether every point inside an adversarial region around x receives the
// same classification. The answer is one of STABLE (a certificate),
// UNSTABLE (a concrete counterexample), or UNKNOWN (the per-sample time
// budget was exhausted).
//
// Everything lives under internal/, layered leaves-up:
//
//	internal/interval       — outward-rounded real interval arithmetic
//	internal/hyperrect      — axis-aligned boxes, products of intervals
//	internal/treemodel      — tree/ensemble/label-set/tier data model
//	internal/perturbation   — adversarial region descriptors
//	internal/search         — generic best-first driver and frontier (no depth-first driver)
//	internal/verify/singletree — exhaustive single-tree stability check
//	internal/verify/ensemble   — best-first refinement over decorators
//	internal/orchestrator   — per-sample control flow and reporting
//	internal/silvafmt       — "silva" text model file format
//	internal/dataset        — CSV / binary dataset loading
//
// The command-line entry point is cmd/silva-verify.
package silva
