package path

import "errors"

// ErrEmptyPath signals that a path had no vertices, or that its
// translated bounding box degenerated (minx > maxx after rounding to
// cell boundaries). Both cases are non-fatal: the caller's scan
// conversion produced nothing to draw, not a failure.
var ErrEmptyPath = errors.New("path: empty or degenerate path")
