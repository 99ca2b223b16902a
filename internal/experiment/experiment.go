package experiment

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/frame"
)

type Config struct {
	Category  drivers.Category
	Algorithm string
	Size      int
	Speed     int
	Target    int
	HasTarget bool
	Seed      int64
	// Dataset replaces the generated values when set.
	Dataset frame.Dataset
	Lang    frame.Lang
}

type Experiment struct {
	cfg        Config
	runner     *engine.Runner
	randSource *rand.Rand
	data       frame.Dataset
}

func New(cfg Config) *Experiment {
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Setup builds the driver and the dataset. The dataset is generated from the
// seed unless the config carries one.
func (e *Experiment) Setup(reg *Registry, metrics []engine.Metric, logger *slog.Logger) error {
	d, err := reg.GetDriver(e.cfg.Category, e.cfg.Algorithm, e.cfg.Lang)
	if err != nil {
		return err
	}

	if len(e.cfg.Dataset) > 0 {
		if err := e.cfg.Dataset.Validate(); err != nil {
			return err
		}
		e.data = e.cfg.Dataset.Clone()
	} else {
		data, err := frame.Generate(e.randSource, e.cfg.Size)
		if err != nil {
			return err
		}
		e.data = data
	}

	e.runner = engine.New(d)
	e.runner.SetLogger(logger)
	for _, m := range metrics {
		e.runner.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context, sleep engine.SleepFunc) (*engine.Result, error) {
	if e.runner == nil {
		return nil, ErrNotSetup
	}
	return e.runner.Run(ctx, e.data, engine.Config{
		Target:    e.cfg.Target,
		HasTarget: e.cfg.HasTarget,
		Delay:     engine.FixedSpeed(e.cfg.Speed),
		Sleep:     sleep,
	})
}

// Runner returns the underlying runner for adding observers.
func (e *Experiment) Runner() *engine.Runner {
	return e.runner
}

// Data returns the initial dataset chosen by Setup.
func (e *Experiment) Data() frame.Dataset {
	return e.data.Clone()
}

func (e *Experiment) Config() Config {
	return e.cfg
}
