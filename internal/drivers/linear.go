package drivers

import "github.com/san-kum/algolab/internal/frame"

type linearPhase uint8

const (
	linearCheck linearPhase = iota
	linearFound
	linearNotFound
	linearFinished
)

// Linear checks indices left to right and stops at the first match.
// The dataset is never reordered.
type Linear struct {
	lang    frame.Lang
	data    frame.Dataset
	target  int
	i       int
	phase   linearPhase
	outcome Outcome
}

func NewLinear(lang frame.Lang) *Linear {
	return &Linear{lang: lang, phase: linearFinished, outcome: pending()}
}

func (s *Linear) Name() string       { return "linear" }
func (s *Linear) Category() Category { return Searching }
func (s *Linear) Outcome() Outcome   { return s.outcome }

func (s *Linear) Start(data frame.Dataset, target int) {
	s.data, s.target, s.i = data, target, 0
	s.outcome = pending()
	s.phase = linearCheck
	if len(data) == 0 {
		s.phase = linearNotFound
	}
}

func (s *Linear) Next() (Emission, bool) {
	n := len(s.data)
	switch s.phase {
	case linearCheck:
		em := emit(frame.KindCompare, s.data,
			frame.NewRoles(n).Mark(frame.TagCompare, s.i),
			s.lang.Format(frame.MsgLinearCheck, s.i, s.data[s.i]), PauseStep)
		if s.data[s.i] == s.target {
			s.phase = linearFound
			return em, true
		}
		s.i++
		if s.i >= n {
			s.phase = linearNotFound
		}
		return em, true

	case linearFound:
		s.phase = linearFinished
		s.outcome = Outcome{Status: StatusFound, Index: s.i}
		return emit(frame.KindFound, s.data,
			frame.NewRoles(n).Mark(frame.TagSorted, s.i),
			s.lang.Format(frame.MsgFound, s.target, s.i), PauseNone), true

	case linearNotFound:
		s.phase = linearFinished
		s.outcome = Outcome{Status: StatusNotFound, Index: -1}
		return emit(frame.KindNotFound, s.data, frame.NewRoles(n),
			s.lang.Format(frame.MsgNotFound, s.target), PauseNone), true
	}
	return Emission{}, false
}
