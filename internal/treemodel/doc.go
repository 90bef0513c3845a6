// Package treemodel defines the classifier model the verifier reasons
// about: decision-tree nodes, trees, ensembles, voting schemes, label sets,
// and categorical tiers.
//
// Nodes are a closed, tagged variant (NodeKind): a node is either a count
// leaf, a logarithmic-score leaf, or a univariate split with two children.
// Trees and ensembles are immutable once built — this package has no
// training path — so every method here is
// read-only with respect to the model and safe for concurrent use by
// multiple verifier goroutines running different samples.
package treemodel
