// Package ensemble implements stability verification for tree ensembles
// using a best-first refinement search over decorators,
// each carrying a hyperrectangle and a partial assignment of trees to
// reached leaves, pruned by a sound overapproximation of per-label
// ensemble scores for the trees not yet reached.
//
// An ensemble with N trees has up to the product of each tree's leaf
// count joint leaf combinations; the search never enumerates this space
// fully. Instead it bounds the score interval contributed by every
// remaining (unexpanded) tree and only refines a decorator when that
// bound leaves more than one label possible.
package ensemble
