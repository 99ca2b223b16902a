package engine

import (
	"context"
	"time"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/frame"
)

type Metric interface {
	Name() string
	Observe(f frame.Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f frame.Frame)
}

// DelaySource yields the pause after an ordinary step. It is consulted once
// per step.
type DelaySource interface {
	Delay() time.Duration
}

// FixedSpeed is a DelaySource for a speed setting that never changes.
type FixedSpeed int

func (s FixedSpeed) Delay() time.Duration { return frame.Delay(int(s)) }

// SleepFunc suspends for d. It returns a non-nil error only when ctx ends
// before d elapses.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoSleep never waits. Benchmarks and tests use it to run at full speed.
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

type Config struct {
	// Target is the value searching drivers look for. HasTarget must be set
	// for searching drivers.
	Target    int
	HasTarget bool

	// Delay defaults to FixedSpeed(frame.DefaultSpeed).
	Delay DelaySource
	// Sleep defaults to Sleep.
	Sleep SleepFunc
}

type Result struct {
	Outcome drivers.Outcome
	Frames  []frame.Frame
	// Final is the last emitted frame; zero when nothing was emitted.
	Final frame.Frame
	// Data is the working copy as the driver left it.
	Data    frame.Dataset
	Steps   int
	Metrics map[string]float64
}

// Canceled reports whether the run was stopped before the driver finished.
func (r *Result) Canceled() bool {
	return r.Outcome.Status == drivers.StatusCanceled
}
