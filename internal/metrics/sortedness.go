package metrics

import "github.com/san-kum/algolab/internal/frame"

// Sortedness is the share of adjacent pairs in order in the latest frame.
// A fully sorted dataset scores 1.
type Sortedness struct {
	name    string
	ordered int
	pairs   int
}

func NewSortedness() *Sortedness {
	return &Sortedness{
		name: "sortedness",
	}
}

func (s *Sortedness) Name() string {
	return s.name
}

func (s *Sortedness) Observe(f frame.Frame) {
	s.ordered, s.pairs = 0, 0
	for i := 1; i < len(f.Values); i++ {
		s.pairs++
		if f.Values[i-1] <= f.Values[i] {
			s.ordered++
		}
	}
}

func (s *Sortedness) Value() float64 {
	if s.pairs == 0 {
		return 1.0
	}
	return float64(s.ordered) / float64(s.pairs)
}

func (s *Sortedness) Reset() {
	s.ordered = 0
	s.pairs = 0
}
