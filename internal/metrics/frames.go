package metrics

import "github.com/san-kum/algolab/internal/frame"

type Frames struct {
	name    string
	samples int
}

func NewFrames() *Frames {
	return &Frames{
		name: "frames",
	}
}

func (f *Frames) Name() string {
	return f.name
}

func (f *Frames) Observe(frame.Frame) {
	f.samples++
}

func (f *Frames) Value() float64 {
	return float64(f.samples)
}

func (f *Frames) Reset() {
	f.samples = 0
}
