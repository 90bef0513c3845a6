package dataset

import "errors"

// ErrInvalidDataset is the sentinel wrapped by every load failure: a
// malformed header, an unsupported format id, or a truncated row.
var ErrInvalidDataset = errors.New("dataset: invalid dataset")
