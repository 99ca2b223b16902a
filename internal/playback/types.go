package playback

import (
	"log/slog"
	"math/rand"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/frame"
)

// Surface receives every frame together with the running flag, and the
// current size and speed whenever they change.
type Surface interface {
	Render(f frame.Frame, running bool)
	Configure(size, speed int)
}

type State uint8

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

type Options struct {
	Registry *experiment.Registry
	// Rand defaults to a time-seeded source.
	Rand   *rand.Rand
	Lang   frame.Lang
	Logger *slog.Logger
	// Sleep defaults to engine.Sleep.
	Sleep   engine.SleepFunc
	Surface Surface
	// Observers are attached to every run in addition to the controller's own.
	Observers []engine.Observer
	// Metrics builds a fresh metric set per run; defaults to the registry's.
	Metrics func() []engine.Metric

	Category  drivers.Category
	Algorithm string
	Size      int
	Speed     int
	// Target is the raw search input, as passed to SetTarget.
	Target string
}

// View is a consistent snapshot of the controller.
type View struct {
	State       string        `json:"state"`
	Category    string        `json:"category"`
	Algorithm   string        `json:"algorithm"`
	Algorithms  []string      `json:"algorithms"`
	Size        int           `json:"size"`
	Speed       int           `json:"speed"`
	DelayMillis int64         `json:"delay_ms"`
	Target      string        `json:"target"`
	Values      frame.Dataset `json:"values"`
	Tags        []string      `json:"tags"`
	Status      string        `json:"status"`
	Step        int           `json:"step"`
	Description string        `json:"description"`
}

type nopSurface struct{}

func (nopSurface) Render(frame.Frame, bool) {}
func (nopSurface) Configure(int, int)       {}
