package analysis

import (
	"context"
	"errors"
	"math/rand"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/frame"
)

var ErrNoSizes = errors.New("analysis: sweep needs at least one size")

type SweepConfig struct {
	Algorithm string
	Sizes     []int
	Trials    int
	Seed      int64
}

// SweepPoint aggregates the trials of one dataset size.
type SweepPoint struct {
	Size        int
	Comparisons float64
	Writes      float64
	Frames      float64
	MaxFrames   int
	Found       int
}

// Sweep runs the algorithm Trials times per size on seeded random datasets.
// Searching algorithms look for a value drawn from the dataset, so every
// search succeeds and the frame count reflects the probe path.
func Sweep(ctx context.Context, reg *experiment.Registry, cfg SweepConfig) ([]SweepPoint, error) {
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	if cfg.Trials <= 0 {
		cfg.Trials = 1
	}
	category, err := reg.Find(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	batch := engine.NewBatch()
	for _, size := range cfg.Sizes {
		for trial := 0; trial < cfg.Trials; trial++ {
			data, err := frame.Generate(rng, size)
			if err != nil {
				return nil, err
			}
			d, err := reg.GetDriver(category, cfg.Algorithm, frame.DefaultLang)
			if err != nil {
				return nil, err
			}
			job := engine.Job{
				Driver:  d,
				Data:    data,
				Config:  engine.Config{Sleep: engine.NoSleep},
				Metrics: reg.DefaultMetrics,
			}
			if category == drivers.Searching {
				job.Config.Target = data[rng.Intn(len(data))]
				job.Config.HasTarget = true
			}
			batch.Add(job)
		}
	}

	results, err := batch.Run(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, 0, len(cfg.Sizes))
	for i, size := range cfg.Sizes {
		p := SweepPoint{Size: size}
		for _, res := range results[i*cfg.Trials : (i+1)*cfg.Trials] {
			p.Comparisons += res.Metrics["comparisons"]
			p.Writes += res.Metrics["writes"]
			p.Frames += float64(res.Steps)
			if res.Steps > p.MaxFrames {
				p.MaxFrames = res.Steps
			}
			if res.Outcome.Status == drivers.StatusFound {
				p.Found++
			}
		}
		n := float64(cfg.Trials)
		p.Comparisons /= n
		p.Writes /= n
		p.Frames /= n
		points = append(points, p)
	}
	return points, nil
}

// Column extracts one measure from a sweep for charting.
func Column(points []SweepPoint, measure string) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		switch measure {
		case "comparisons":
			out[i] = p.Comparisons
		case "writes":
			out[i] = p.Writes
		default:
			out[i] = p.Frames
		}
	}
	return out
}
