package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/frame"
	"github.com/san-kum/algolab/internal/storage"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Language    string         `yaml:"language"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario
type ScenarioStep struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`
	Size      int    `yaml:"size"`
	Speed     int    `yaml:"speed"`
	Seed      int64  `yaml:"seed"`
	Dataset   string `yaml:"dataset"`
	Target    *int   `yaml:"target"`
	Save      bool   `yaml:"save"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	return &scenario, nil
}

type RunOptions struct {
	// Store receives steps marked save; nil disables saving.
	Store *storage.Store
	// Sleep defaults to engine.NoSleep so scenarios finish immediately.
	Sleep engine.SleepFunc
	// Progress receives one line per step; nil discards.
	Progress io.Writer
	Logger   *slog.Logger
	User     string
}

type StepResult struct {
	Name   string
	RunID  string
	Result *engine.Result
}

// RunScenario executes all steps in order and stops at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, opts RunOptions) ([]StepResult, error) {
	if opts.Sleep == nil {
		opts.Sleep = engine.NoSleep
	}
	if opts.Progress == nil {
		opts.Progress = io.Discard
	}
	lang := frame.Lang(scenario.Language)
	if !lang.Valid() {
		lang = frame.DefaultLang
	}

	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = step.Algorithm
		}
		fmt.Fprintf(opts.Progress, "Running step %d/%d: %s\n", i+1, len(scenario.Steps), name)

		category, err := registry.Find(step.Algorithm)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		cfg := experiment.Config{
			Category:  category,
			Algorithm: step.Algorithm,
			Size:      step.Size,
			Speed:     step.Speed,
			Seed:      step.Seed,
			Lang:      lang,
		}
		if cfg.Size == 0 {
			cfg.Size = frame.DefaultSize
		}
		if step.Target != nil {
			cfg.Target, cfg.HasTarget = *step.Target, true
		}
		if step.Dataset != "" {
			if cfg.Dataset, err = frame.Parse(step.Dataset); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		exp := experiment.New(cfg)
		if err := exp.Setup(registry, registry.DefaultMetrics(), opts.Logger); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx, opts.Sleep)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Name: name, Result: result}
		if step.Save && opts.Store != nil {
			info := storage.RunInfo{
				Algorithm: step.Algorithm,
				Category:  string(category),
				Seed:      step.Seed,
				Speed:     step.Speed,
				Target:    step.Target,
				User:      opts.User,
				Initial:   exp.Data(),
			}
			if sr.RunID, err = opts.Store.Save(info, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		results = append(results, sr)

		if result.Canceled() {
			return results, ctx.Err()
		}
	}

	return results, nil
}

// TrialConfig defines randomized correctness trials
type TrialConfig struct {
	Algorithm string
	Size      int
	NumTrials int
	Seed      int64
}

// TrialResult holds the verdict of one trial
type TrialResult struct {
	TrialID int
	Initial frame.Dataset
	Final   frame.Dataset
	Outcome drivers.Outcome
	Correct bool
}

// RunTrials runs the algorithm on random datasets and checks each outcome:
// sorting must end non-decreasing, searching must agree with a direct scan
// of the dataset the driver finished with.
func RunTrials(ctx context.Context, cfg *TrialConfig, registry *experiment.Registry) ([]TrialResult, error) {
	category, err := registry.Find(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	results := make([]TrialResult, 0, cfg.NumTrials)
	for trial := 0; trial < cfg.NumTrials; trial++ {
		data, err := frame.Generate(rng, cfg.Size)
		if err != nil {
			return nil, err
		}
		d, err := registry.GetDriver(category, cfg.Algorithm, frame.DefaultLang)
		if err != nil {
			return nil, err
		}

		runCfg := engine.Config{Sleep: engine.NoSleep}
		if category == drivers.Searching {
			// half the targets are absent from the dataset
			runCfg.Target = rng.Intn(frame.MaxValue) + frame.MinValue
			if trial%2 == 0 {
				runCfg.Target = data[rng.Intn(len(data))]
			}
			runCfg.HasTarget = true
		}

		result, err := engine.New(d).Run(ctx, data, runCfg)
		if err != nil {
			return nil, err
		}
		if result.Canceled() {
			return results, ctx.Err()
		}

		results = append(results, TrialResult{
			TrialID: trial,
			Initial: data,
			Final:   result.Data,
			Outcome: result.Outcome,
			Correct: verify(category, result, runCfg.Target),
		})
	}

	return results, nil
}

func verify(category drivers.Category, res *engine.Result, target int) bool {
	if category == drivers.Sorting {
		return res.Outcome.Status == drivers.StatusSorted && res.Data.IsSorted()
	}
	want := res.Data.IndexOf(target)
	if want < 0 {
		return res.Outcome.Status == drivers.StatusNotFound
	}
	return res.Outcome.Status == drivers.StatusFound && res.Data[res.Outcome.Index] == target
}

// TrialStats computes summary statistics from trial results
func TrialStats(results []TrialResult) (correct int, wrong int) {
	for _, r := range results {
		if r.Correct {
			correct++
		} else {
			wrong++
		}
	}
	return
}
