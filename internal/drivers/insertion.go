package drivers

import "github.com/san-kum/algolab/internal/frame"

type insertionPhase uint8

const (
	insertionPick insertionPhase = iota
	insertionShift
	insertionPlace
	insertionDone
	insertionFinished
)

// Insertion takes each element in turn as the key, shifts larger values of
// the prefix one slot right and drops the key into the gap.
type Insertion struct {
	lang    frame.Lang
	data    frame.Dataset
	n, i, j int
	key     int
	phase   insertionPhase
	outcome Outcome
}

func NewInsertion(lang frame.Lang) *Insertion {
	return &Insertion{lang: lang, phase: insertionFinished, outcome: pending()}
}

func (s *Insertion) Name() string       { return "insertion" }
func (s *Insertion) Category() Category { return Sorting }
func (s *Insertion) Outcome() Outcome   { return s.outcome }

func (s *Insertion) Start(data frame.Dataset, _ int) {
	s.data, s.n, s.i = data, len(data), 1
	s.outcome = pending()
	s.phase = insertionPick
	if s.n < 2 {
		s.phase = insertionDone
	}
}

func (s *Insertion) Next() (Emission, bool) {
	switch s.phase {
	case insertionPick:
		s.key, s.j = s.data[s.i], s.i-1
		em := emit(frame.KindPick, s.data,
			frame.NewRoles(s.n).Mark(frame.TagPivot, s.i),
			s.lang.Format(frame.MsgInsertionPick, s.key), PauseStep)
		s.scan()
		return em, true

	case insertionShift:
		j := s.j
		status := s.lang.Format(frame.MsgInsertionShift, s.data[j])
		s.data[j+1] = s.data[j]
		em := emit(frame.KindShift, s.data,
			frame.NewRoles(s.n).Mark(frame.TagCompare, j).Mark(frame.TagSwap, j+1),
			status, PauseStep)
		s.j--
		s.scan()
		return em, true

	case insertionPlace:
		pos := s.j + 1
		s.data[pos] = s.key
		em := emit(frame.KindPlace, s.data,
			frame.NewRoles(s.n).Mark(frame.TagSorted, pos),
			s.lang.Format(frame.MsgInsertionPlace, s.key), PauseStep)
		s.i++
		if s.i >= s.n {
			s.phase = insertionDone
		} else {
			s.phase = insertionPick
		}
		return em, true

	case insertionDone:
		s.phase = insertionFinished
		s.outcome = Outcome{Status: StatusSorted, Index: -1}
		return done(s.lang, s.data), true
	}
	return Emission{}, false
}

// scan decides whether the key still has to move left.
func (s *Insertion) scan() {
	if s.j >= 0 && s.data[s.j] > s.key {
		s.phase = insertionShift
	} else {
		s.phase = insertionPlace
	}
}
