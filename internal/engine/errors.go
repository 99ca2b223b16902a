package engine

import "errors"

// Errors returned by Run before any frame is emitted.
var (
	// ErrEmptyDataset indicates Run was called with no values.
	ErrEmptyDataset = errors.New("engine: empty dataset")

	// ErrMissingTarget indicates a searching driver was started without a target.
	ErrMissingTarget = errors.New("engine: searching driver needs a target")
)
