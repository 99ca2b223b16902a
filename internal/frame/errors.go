package frame

import "errors"

// Domain errors for dataset and frame operations.
var (
	// ErrSizeOutOfRange indicates a requested dataset size outside [MinSize, MaxSize].
	ErrSizeOutOfRange = errors.New("frame: dataset size out of range")

	// ErrValueOutOfRange indicates a dataset value outside [MinValue, MaxValue].
	ErrValueOutOfRange = errors.New("frame: value out of range")

	// ErrDuplicateValue indicates a dataset that repeats a value.
	ErrDuplicateValue = errors.New("frame: duplicate value in dataset")

	// ErrUnknownTag indicates a tag name that is not part of the closed set.
	ErrUnknownTag = errors.New("frame: unknown tag")

	// ErrUnknownKind indicates a frame kind name that is not recognised.
	ErrUnknownKind = errors.New("frame: unknown frame kind")
)
