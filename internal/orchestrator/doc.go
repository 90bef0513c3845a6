// Package orchestrator drives the per-sample verification loop: it
// classifies a sample concretely, lowers its perturbation to a box,
// dispatches to the single-tree or ensemble verifier depending on model
// kind, and packages the result into a StabilityStatus.
//
// Per-sample timeouts are expected and non-fatal: they surface as an
// UNKNOWN verdict and are logged at debug, never error. Model and dataset
// load failures are hard errors the orchestrator does not attempt to
// recover from.
package orchestrator
