package drivers

import (
	"slices"

	"github.com/san-kum/algolab/internal/frame"
)

type binaryPhase uint8

const (
	binaryPresort binaryPhase = iota
	binaryProbe
	binaryFound
	binaryNotFound
	binaryFinished
)

// Binary sorts the dataset ascending in place, then halves the candidate
// range [low, high] around its midpoint until the target is hit or the
// range is empty.
type Binary struct {
	lang           frame.Lang
	data           frame.Dataset
	target         int
	low, high, mid int
	phase          binaryPhase
	outcome        Outcome
}

func NewBinary(lang frame.Lang) *Binary {
	return &Binary{lang: lang, phase: binaryFinished, outcome: pending()}
}

func (s *Binary) Name() string       { return "binary" }
func (s *Binary) Category() Category { return Searching }
func (s *Binary) Outcome() Outcome   { return s.outcome }

func (s *Binary) Start(data frame.Dataset, target int) {
	s.data, s.target = data, target
	s.outcome = pending()
	s.phase = binaryPresort
}

func (s *Binary) Next() (Emission, bool) {
	n := len(s.data)
	switch s.phase {
	case binaryPresort:
		slices.Sort(s.data)
		s.low, s.high = 0, n-1
		s.phase = binaryProbe
		if s.low > s.high {
			s.phase = binaryNotFound
		}
		return emit(frame.KindPresort, s.data, frame.NewRoles(n),
			s.lang.Format(frame.MsgPresort), PauseFixed), true

	case binaryProbe:
		s.mid = (s.low + s.high) / 2
		em := emit(frame.KindCompare, s.data, s.window(),
			s.lang.Format(frame.MsgBinaryRange, s.low, s.high, s.mid, s.data[s.mid]), PauseStep)
		switch v := s.data[s.mid]; {
		case v == s.target:
			s.phase = binaryFound
		case v < s.target:
			s.low = s.mid + 1
		default:
			s.high = s.mid - 1
		}
		if s.phase == binaryProbe && s.low > s.high {
			s.phase = binaryNotFound
		}
		return em, true

	case binaryFound:
		s.phase = binaryFinished
		s.outcome = Outcome{Status: StatusFound, Index: s.mid}
		return emit(frame.KindFound, s.data, s.window().Mark(frame.TagSorted, s.mid),
			s.lang.Format(frame.MsgFound, s.target, s.mid), PauseNone), true

	case binaryNotFound:
		s.phase = binaryFinished
		s.outcome = Outcome{Status: StatusNotFound, Index: -1}
		return emit(frame.KindNotFound, s.data, frame.NewRoles(n),
			s.lang.Format(frame.MsgNotFound, s.target), PauseNone), true
	}
	return Emission{}, false
}

// window tags the live range as compare and the midpoint as pivot.
func (s *Binary) window() *frame.Roles {
	return frame.NewRoles(len(s.data)).
		Range(s.low, s.high+1, frame.TagCompare).
		Mark(frame.TagPivot, s.mid)
}
