package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/san-kum/algolab/internal/frame"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algolab_runs_total",
		Help: "Finished runs by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	framesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algolab_frames_emitted_total",
		Help: "Frames emitted by algorithm and frame kind",
	}, []string{"algorithm", "kind"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algolab_run_duration_seconds",
		Help:    "Wall-clock duration of runs including pauses",
		Buckets: []float64{0.01, 0.1, 1, 5, 15, 60, 300},
	}, []string{"algorithm"})

	activeRuns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "algolab_active_runs",
		Help: "Runs currently in flight",
	})
)

// PromObserver is an engine observer that counts emitted frames.
type PromObserver struct {
	frames *prometheus.CounterVec
	algo   string
}

func NewPromObserver(algorithm string) *PromObserver {
	return &PromObserver{frames: framesTotal, algo: algorithm}
}

func (o *PromObserver) OnFrame(f frame.Frame) {
	o.frames.WithLabelValues(o.algo, f.Kind.String()).Inc()
}

// RunStarted marks a run as in flight. The returned func records its outcome.
func RunStarted(algorithm string) func(outcome string) {
	activeRuns.Inc()
	start := time.Now()
	return func(outcome string) {
		activeRuns.Dec()
		runDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
		RecordRun(algorithm, outcome)
	}
}

func RecordRun(algorithm, outcome string) {
	runsTotal.WithLabelValues(algorithm, outcome).Inc()
}
