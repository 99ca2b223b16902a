package drivers

import (
	"fmt"

	"github.com/san-kum/algolab/internal/frame"
)

// Category groups drivers by what they do to the dataset.
type Category string

const (
	Sorting   Category = "sorting"
	Searching Category = "searching"
)

// Categories lists the categories in display order.
var Categories = []Category{Sorting, Searching}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Sorting, Searching:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Pause tells the runner how long to suspend after an emission.
type Pause uint8

const (
	// PauseStep waits for the speed-derived delay.
	PauseStep Pause = iota
	// PauseFixed waits for frame.PresortPause regardless of speed.
	PauseFixed
	// PauseNone continues immediately.
	PauseNone
)

// Emission is one frame produced by a driver step.
type Emission struct {
	Frame frame.Frame
	Pause Pause
}

// Status is the terminal state of a run.
type Status uint8

const (
	StatusPending Status = iota
	StatusSorted
	StatusFound
	StatusNotFound
	StatusCanceled
)

var statusNames = [...]string{
	StatusPending:  "pending",
	StatusSorted:   "sorted",
	StatusFound:    "found",
	StatusNotFound: "not_found",
	StatusCanceled: "canceled",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Outcome reports how a run ended. Index is the found position for
// StatusFound and -1 otherwise.
type Outcome struct {
	Status Status
	Index  int
}

func pending() Outcome { return Outcome{Status: StatusPending, Index: -1} }

// Driver is a resumable step sequence over a mutable dataset. Each call to
// Next performs exactly one step and emits exactly one frame; any dataset
// write belongs to the step whose frame shows it. Next returns false once
// the sequence is exhausted.
type Driver interface {
	Name() string
	Category() Category
	// Start binds the driver to data, which it mutates in place. target is
	// ignored by sorting drivers.
	Start(data frame.Dataset, target int)
	Next() (Emission, bool)
	Outcome() Outcome
}

func emit(kind frame.Kind, data frame.Dataset, roles *frame.Roles, status string, pause Pause) Emission {
	return Emission{
		Frame: frame.New(kind, data, roles.Highlight(), status),
		Pause: pause,
	}
}

// done emits the all-sorted terminal frame shared by the sorting drivers.
func done(lang frame.Lang, data frame.Dataset) Emission {
	return Emission{
		Frame: frame.New(frame.KindDone, data, frame.Uniform(len(data), frame.TagSorted), lang.Format(frame.MsgSorted)),
		Pause: PauseNone,
	}
}
