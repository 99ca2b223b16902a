package frame

import "fmt"

// Kind classifies the step a frame depicts.
type Kind uint8

const (
	KindReset Kind = iota
	KindPick
	KindCompare
	KindSwap
	KindShift
	KindPlace
	KindPresort
	KindFound
	KindNotFound
	KindDone
	KindStopped
)

var kindNames = [...]string{
	KindReset:    "reset",
	KindPick:     "pick",
	KindCompare:  "compare",
	KindSwap:     "swap",
	KindShift:    "shift",
	KindPlace:    "place",
	KindPresort:  "presort",
	KindFound:    "found",
	KindNotFound: "not_found",
	KindDone:     "done",
	KindStopped:  "stopped",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return KindReset, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsComparison reports whether the step compared two values.
func (k Kind) IsComparison() bool {
	return k == KindCompare || k == KindShift
}

// IsWrite reports whether the step wrote into the dataset.
func (k Kind) IsWrite() bool {
	return k == KindSwap || k == KindShift || k == KindPlace
}

// IsTerminal reports whether the step ends a run.
func (k Kind) IsTerminal() bool {
	return k == KindFound || k == KindNotFound || k == KindDone
}

// Frame is one snapshot handed to observers. Values and Tags are private
// copies; receivers must not modify them.
type Frame struct {
	Step   int
	Kind   Kind
	Values Dataset
	Tags   Highlight
	Status string
}

// New copies values and tags into a fresh frame. Step is assigned by the runner.
func New(kind Kind, values Dataset, tags Highlight, status string) Frame {
	return Frame{
		Kind:   kind,
		Values: values.Clone(),
		Tags:   tags.Clone(),
		Status: status,
	}
}

// Len is the dataset length of the frame.
func (f Frame) Len() int { return len(f.Values) }
