// Package silvafmt reads the "silva" text serialization of a decision tree
// or tree ensemble.
//
// Grammar (whitespace-separated tokens, no escaping):
//
//	tree   := "classifier-decision-tree" n_features K label{K} node
//	node   := "LEAF" count{K}
//	        | "LEAF_LOGARITHMIC" score{K}
//	        | "SPLIT" feature_index threshold node node
//	forest := "classifier-forest" n_trees tree{n_trees}
//
// A forest's default voting scheme is max; callers override it after load
// with treemodel.NewEnsemble's Voting argument or by mutating the result.
//
// Every malformed token sequence is unrecoverable: ParseTree/ParseEnsemble
// return an error wrapping ErrInvalidModel with the line number and a
// description of what was expected, and the caller is expected to abort
// rather than continue with a partially built model.
package silvafmt
