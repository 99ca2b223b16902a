package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/frame"
)

type Runner struct {
	driver    drivers.Driver
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(d drivers.Driver) *Runner {
	return &Runner{
		driver:    d,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    slog.Default().With(slog.String("component", "engine")),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// SetLogger replaces the logger. A nil logger restores slog.Default().
func (r *Runner) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	r.logger = l.With(slog.String("component", "engine"))
}

func (r *Runner) Driver() drivers.Driver { return r.driver }

// Run drives a copy of data through the driver. Cancellation is reported in
// the result's outcome, not as an error; the returned error is non-nil only
// when the inputs are rejected, in which case nothing is emitted.
func (r *Runner) Run(ctx context.Context, data frame.Dataset, cfg Config) (*Result, error) {
	if err := r.validate(data, cfg); err != nil {
		return nil, err
	}

	delay := cfg.Delay
	if delay == nil {
		delay = FixedSpeed(frame.DefaultSpeed)
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	work := data.Clone()
	result := &Result{
		Frames:  make([]frame.Frame, 0, 4*len(work)),
		Data:    work,
		Metrics: make(map[string]float64),
	}

	log := r.logger.With(slog.String("algorithm", r.driver.Name()))
	log.Debug("run started", slog.Int("size", len(work)), slog.Int("target", cfg.Target))
	start := time.Now()

	r.driver.Start(work, cfg.Target)
	result.Outcome = r.loop(ctx, result, delay, sleep)

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	log.Debug("run finished",
		slog.String("outcome", result.Outcome.Status.String()),
		slog.Int("steps", result.Steps),
		slog.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (r *Runner) loop(ctx context.Context, result *Result, delay DelaySource, sleep SleepFunc) drivers.Outcome {
	for {
		if ctx.Err() != nil {
			return r.canceled()
		}

		em, ok := r.driver.Next()
		if !ok {
			return r.driver.Outcome()
		}

		em.Frame.Step = result.Steps
		result.Steps++
		result.Frames = append(result.Frames, em.Frame)
		result.Final = em.Frame

		for _, m := range r.metrics {
			m.Observe(em.Frame)
		}
		for _, obs := range r.observers {
			obs.OnFrame(em.Frame)
		}

		var d time.Duration
		switch em.Pause {
		case drivers.PauseStep:
			d = delay.Delay()
		case drivers.PauseFixed:
			d = frame.PresortPause
		}
		if d > 0 {
			if err := sleep(ctx, d); err != nil {
				return r.canceled()
			}
		}
	}
}

// canceled keeps a terminal outcome the driver already reached.
func (r *Runner) canceled() drivers.Outcome {
	if out := r.driver.Outcome(); out.Status != drivers.StatusPending {
		return out
	}
	return drivers.Outcome{Status: drivers.StatusCanceled, Index: -1}
}

func (r *Runner) validate(data frame.Dataset, cfg Config) error {
	if len(data) == 0 {
		return ErrEmptyDataset
	}
	if r.driver.Category() == drivers.Searching && !cfg.HasTarget {
		return ErrMissingTarget
	}
	return nil
}
