package playback

import "errors"

var (
	// ErrInvalidTarget indicates a missing or non-numeric search target.
	ErrInvalidTarget = errors.New("playback: invalid search target")

	ErrUnknownAlgorithm = errors.New("playback: unknown algorithm")
	ErrUnknownCategory  = errors.New("playback: unknown category")
	ErrSizeOutOfRange   = errors.New("playback: size out of range")
)

// InputError carries the user-facing message for rejected input.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string { return e.Msg }

func (e *InputError) Unwrap() error { return e.Err }
