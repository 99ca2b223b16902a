package drivers

import "errors"

var (
	// ErrUnknownCategory indicates a category outside {sorting, searching}.
	ErrUnknownCategory = errors.New("drivers: unknown category")
)
