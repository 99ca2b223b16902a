package engine

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/frame"
)

type recordSleep struct {
	pauses []time.Duration
}

func (s *recordSleep) sleep(ctx context.Context, d time.Duration) error {
	s.pauses = append(s.pauses, d)
	return ctx.Err()
}

type countMetric struct{ n int }

func (m *countMetric) Name() string        { return "count" }
func (m *countMetric) Observe(frame.Frame) { m.n++ }
func (m *countMetric) Value() float64      { return float64(m.n) }
func (m *countMetric) Reset()              { m.n = 0 }

type observerFunc func(frame.Frame)

func (f observerFunc) OnFrame(fr frame.Frame) { f(fr) }

type liveSpeed struct{ speed atomic.Int64 }

func (l *liveSpeed) Delay() time.Duration { return frame.Delay(int(l.speed.Load())) }

func TestRunnerRun(t *testing.T) {
	input := frame.Dataset{5, 3, 8, 1}
	r := New(drivers.NewBubble(frame.LangID))
	metric := &countMetric{}
	r.AddMetric(metric)

	result, err := r.Run(context.Background(), input, Config{Sleep: NoSleep})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Outcome.Status != drivers.StatusSorted {
		t.Errorf("outcome %s, want sorted", result.Outcome.Status)
	}
	if !slices.Equal(result.Data, frame.Dataset{1, 3, 5, 8}) {
		t.Errorf("final data %v", result.Data)
	}
	if !slices.Equal(input, frame.Dataset{5, 3, 8, 1}) {
		t.Errorf("input mutated: %v", input)
	}
	if result.Steps != len(result.Frames) {
		t.Errorf("steps %d, frames %d", result.Steps, len(result.Frames))
	}
	for i, f := range result.Frames {
		if f.Step != i {
			t.Fatalf("frame %d numbered %d", i, f.Step)
		}
	}
	if got := result.Metrics["count"]; got != float64(result.Steps) {
		t.Errorf("metric %v, want %d", got, result.Steps)
	}
	if !result.Final.Tags.All(frame.TagSorted) {
		t.Errorf("final tags %v", result.Final.Tags)
	}
}

func TestRunnerInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		driver drivers.Driver
		data   frame.Dataset
		cfg    Config
		want   error
	}{
		{"empty sorting", drivers.NewBubble(frame.LangID), nil, Config{}, ErrEmptyDataset},
		{"empty searching", drivers.NewLinear(frame.LangID), frame.Dataset{}, Config{HasTarget: true}, ErrEmptyDataset},
		{"linear without target", drivers.NewLinear(frame.LangID), frame.Dataset{1, 2}, Config{}, ErrMissingTarget},
		{"binary without target", drivers.NewBinary(frame.LangID), frame.Dataset{1, 2}, Config{}, ErrMissingTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.driver)
			var seen int
			r.AddObserver(observerFunc(func(frame.Frame) { seen++ }))

			_, err := r.Run(context.Background(), tt.data, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			if seen != 0 {
				t.Errorf("%d frames emitted before rejection", seen)
			}
		})
	}
}

func TestRunnerCancellation(t *testing.T) {
	for _, stopAfter := range []int{1, 3, 7} {
		ctx, cancel := context.WithCancel(context.Background())
		r := New(drivers.NewSelection(frame.LangID))
		var seen int
		r.AddObserver(observerFunc(func(frame.Frame) {
			seen++
			if seen == stopAfter {
				cancel()
			}
		}))

		result, err := r.Run(ctx, frame.Dataset{9, 7, 5, 3, 1}, Config{Sleep: NoSleep})
		cancel()
		if err != nil {
			t.Fatalf("cancellation returned error: %v", err)
		}
		if !result.Canceled() {
			t.Fatalf("outcome %s, want canceled", result.Outcome.Status)
		}
		if result.Steps != stopAfter {
			t.Errorf("stop after %d: %d frames emitted", stopAfter, result.Steps)
		}
		if !slices.Equal(result.Data, result.Final.Values) {
			t.Errorf("data %v does not match last frame %v", result.Data, result.Final.Values)
		}
	}
}

func TestRunnerCancelMidStep(t *testing.T) {
	tests := []struct {
		name     string
		driver   drivers.Driver
		data     frame.Dataset
		target   int
		cancelOn frame.Kind
		inPause  bool
		steps    int
		want     frame.Dataset
	}{
		{
			name:     "insertion after a shift",
			driver:   drivers.NewInsertion(frame.LangID),
			data:     frame.Dataset{9, 7, 5, 3, 1},
			cancelOn: frame.KindShift,
			steps:    2,
			// key 7 is lifted out, 9 is duplicated into its slot
			want: frame.Dataset{9, 9, 5, 3, 1},
		},
		{
			name:     "binary during the presort pause",
			driver:   drivers.NewBinary(frame.LangID),
			data:     frame.Dataset{4, 2, 9, 1, 7},
			target:   9,
			cancelOn: frame.KindPresort,
			inPause:  true,
			steps:    1,
			want:     frame.Dataset{1, 2, 4, 7, 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var last frame.Kind
			r := New(tt.driver)
			r.AddObserver(observerFunc(func(f frame.Frame) {
				last = f.Kind
				if f.Kind == tt.cancelOn && !tt.inPause {
					cancel()
				}
			}))
			cfg := Config{Target: tt.target, HasTarget: tt.driver.Category() == drivers.Searching, Sleep: NoSleep}
			if tt.inPause {
				cfg.Sleep = func(ctx context.Context, _ time.Duration) error {
					if last == tt.cancelOn {
						cancel()
					}
					return ctx.Err()
				}
			}

			result, err := r.Run(ctx, tt.data, cfg)
			if err != nil {
				t.Fatal(err)
			}
			if !result.Canceled() {
				t.Fatalf("outcome %s, want canceled", result.Outcome.Status)
			}
			if result.Steps != tt.steps {
				t.Errorf("%d frames emitted, want %d", result.Steps, tt.steps)
			}
			if result.Final.Kind != tt.cancelOn {
				t.Errorf("last frame kind %v, want %v", result.Final.Kind, tt.cancelOn)
			}
			if !slices.Equal(result.Data, tt.want) {
				t.Errorf("data %v, want %v", result.Data, tt.want)
			}
			if !slices.Equal(result.Data, result.Final.Values) {
				t.Errorf("data %v does not match last frame %v", result.Data, result.Final.Values)
			}
		})
	}
}

func TestRunnerCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(drivers.NewBubble(frame.LangID)).Run(ctx, frame.Dataset{2, 1}, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Canceled() || result.Steps != 0 {
		t.Errorf("outcome %s after %d steps", result.Outcome.Status, result.Steps)
	}
}

func TestRunnerPauses(t *testing.T) {
	rec := &recordSleep{}
	r := New(drivers.NewBinary(frame.LangID))

	result, err := r.Run(context.Background(), frame.Dataset{4, 2, 9, 1, 7}, Config{
		Target:    9,
		HasTarget: true,
		Delay:     FixedSpeed(1000),
		Sleep:     rec.sleep,
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Outcome.Status != drivers.StatusFound || result.Outcome.Index != 4 {
		t.Fatalf("outcome %+v", result.Outcome)
	}

	// presort, three probes, then a terminal frame without a pause
	want := []time.Duration{frame.PresortPause, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}
	if !slices.Equal(rec.pauses, want) {
		t.Errorf("pauses %v, want %v", rec.pauses, want)
	}
}

func TestRunnerLiveDelay(t *testing.T) {
	rec := &recordSleep{}
	speed := &liveSpeed{}
	speed.speed.Store(50)

	r := New(drivers.NewLinear(frame.LangID))
	var seen int
	r.AddObserver(observerFunc(func(frame.Frame) {
		seen++
		if seen == 2 {
			speed.speed.Store(1000)
		}
	}))

	_, err := r.Run(context.Background(), frame.Dataset{1, 2, 3, 4, 5}, Config{
		Target:    4,
		HasTarget: true,
		Delay:     speed,
		Sleep:     rec.sleep,
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []time.Duration{1000 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond}
	if !slices.Equal(rec.pauses, want) {
		t.Errorf("pauses %v, want %v", rec.pauses, want)
	}
}

func TestSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Sleep ignored cancellation")
	}

	if err := Sleep(context.Background(), time.Millisecond); err != nil {
		t.Errorf("short sleep: %v", err)
	}
}

func TestBatch(t *testing.T) {
	data := frame.Dataset{8, 6, 4, 2, 9}
	b := NewBatch(
		Job{Driver: drivers.NewBubble(frame.LangID), Data: data, Config: Config{Sleep: NoSleep}},
		Job{Driver: drivers.NewInsertion(frame.LangID), Data: data, Config: Config{Sleep: NoSleep}},
	)
	b.Add(Job{
		Driver:  drivers.NewLinear(frame.LangID),
		Data:    data,
		Config:  Config{Target: 2, HasTarget: true, Sleep: NoSleep},
		Metrics: func() []Metric { return []Metric{&countMetric{}} },
	})

	results, err := b.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != b.Len() {
		t.Fatalf("got %d results", len(results))
	}
	for _, res := range results[:2] {
		if !res.Data.IsSorted() {
			t.Errorf("not sorted: %v", res.Data)
		}
	}
	if results[2].Outcome.Index != 3 || results[2].Metrics["count"] != 5 {
		t.Errorf("linear result %+v metrics %v", results[2].Outcome, results[2].Metrics)
	}

	serial := NewBatch(
		Job{Driver: drivers.NewSelection(frame.LangID), Data: data, Config: Config{Sleep: NoSleep}},
		Job{Driver: drivers.NewBinary(frame.LangID), Data: data, Config: Config{Target: 9, HasTarget: true, Sleep: NoSleep}},
	)
	serial.SetLimit(1)
	results, err = serial.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Data.IsSorted() || results[1].Outcome.Status != drivers.StatusFound {
		t.Errorf("serial batch results %v %+v", results[0].Data, results[1].Outcome)
	}

	bad := NewBatch(Job{Driver: drivers.NewBinary(frame.LangID), Data: data})
	if _, err := bad.Run(context.Background()); !errors.Is(err, ErrMissingTarget) {
		t.Errorf("got %v, want ErrMissingTarget", err)
	}
}
