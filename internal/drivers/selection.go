package drivers

import "github.com/san-kum/algolab/internal/frame"

type selectionPhase uint8

const (
	selectionCompare selectionPhase = iota
	selectionSwap
	selectionDone
	selectionFinished
)

// Selection scans the unsorted suffix for its minimum and swaps it into
// position i, growing the sorted prefix by one per pass.
type Selection struct {
	lang         frame.Lang
	data         frame.Dataset
	n, i, j, min int
	phase        selectionPhase
	outcome      Outcome
}

func NewSelection(lang frame.Lang) *Selection {
	return &Selection{lang: lang, phase: selectionFinished, outcome: pending()}
}

func (s *Selection) Name() string       { return "selection" }
func (s *Selection) Category() Category { return Sorting }
func (s *Selection) Outcome() Outcome   { return s.outcome }

func (s *Selection) Start(data frame.Dataset, _ int) {
	s.data, s.n = data, len(data)
	s.outcome = pending()
	s.i, s.min, s.j = 0, 0, 1
	s.phase = selectionCompare
	if s.n < 2 {
		s.phase = selectionDone
	}
}

func (s *Selection) Next() (Emission, bool) {
	switch s.phase {
	case selectionCompare:
		roles := frame.NewRoles(s.n).
			Range(0, s.i, frame.TagSorted).
			Mark(frame.TagPivot, s.i, s.min).
			Mark(frame.TagCompare, s.j)
		em := emit(frame.KindCompare, s.data, roles,
			s.lang.Format(frame.MsgSelectionCompare, s.data[s.min], s.data[s.j]), PauseStep)
		if s.data[s.j] < s.data[s.min] {
			s.min = s.j
		}
		s.j++
		if s.j >= s.n {
			if s.min != s.i {
				s.phase = selectionSwap
			} else {
				s.nextPass()
			}
		}
		return em, true

	case selectionSwap:
		status := s.lang.Format(frame.MsgSelectionSwap, s.data[s.i], s.data[s.min])
		s.data[s.i], s.data[s.min] = s.data[s.min], s.data[s.i]
		roles := frame.NewRoles(s.n).
			Range(0, s.i, frame.TagSorted).
			Mark(frame.TagSwap, s.i, s.min)
		em := emit(frame.KindSwap, s.data, roles, status, PauseStep)
		s.nextPass()
		return em, true

	case selectionDone:
		s.phase = selectionFinished
		s.outcome = Outcome{Status: StatusSorted, Index: -1}
		return done(s.lang, s.data), true
	}
	return Emission{}, false
}

func (s *Selection) nextPass() {
	s.i++
	if s.i >= s.n-1 {
		s.phase = selectionDone
		return
	}
	s.min, s.j = s.i, s.i+1
	s.phase = selectionCompare
}
