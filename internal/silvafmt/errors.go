package silvafmt

import "errors"

// ErrInvalidModel is the sentinel wrapped by every parse failure. It is
// unrecoverable: callers are expected to abort the run rather than retry
// or skip the offending model.
var ErrInvalidModel = errors.New("silvafmt: invalid model")
