package analysis

import "github.com/san-kum/algolab/internal/frame"

// Inversions counts pairs i<j with d[i] > d[j].
func Inversions(d frame.Dataset) int {
	n := 0
	for i := 0; i < len(d); i++ {
		for j := i + 1; j < len(d); j++ {
			if d[i] > d[j] {
				n++
			}
		}
	}
	return n
}

// RunTrace holds one sample per frame.
type RunTrace struct {
	Inversions []float64
	Sorted     []float64
	Writes     []float64
}

// Trace follows a run frame by frame: remaining inversions, indices tagged
// sorted, and the cumulative number of writes.
func Trace(frames []frame.Frame) *RunTrace {
	tr := &RunTrace{
		Inversions: make([]float64, len(frames)),
		Sorted:     make([]float64, len(frames)),
		Writes:     make([]float64, len(frames)),
	}
	writes := 0
	for i, f := range frames {
		if f.Kind.IsWrite() {
			writes++
		}
		tr.Inversions[i] = float64(Inversions(f.Values))
		tr.Sorted[i] = float64(f.Tags.Count(frame.TagSorted))
		tr.Writes[i] = float64(writes)
	}
	return tr
}
