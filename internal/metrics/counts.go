package metrics

import "github.com/san-kum/algolab/internal/frame"

// Comparisons counts frames that compare two values.
type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(f frame.Frame) {
	if f.Kind.IsComparison() {
		c.count++
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }

func (c *Comparisons) Reset() { c.count = 0 }

// Writes counts frames that changed the dataset: swaps, shifts and
// placements. The binary search presort is a single bulk write and is not
// counted.
type Writes struct {
	name  string
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(f frame.Frame) {
	if f.Kind.IsWrite() {
		w.count++
	}
}

func (w *Writes) Value() float64 { return float64(w.count) }

func (w *Writes) Reset() { w.count = 0 }
