package automation

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/storage"
)

const scenarioYAML = `
name: tour
description: one run per algorithm
steps:
  - name: bubble demo
    algorithm: bubble
    dataset: "5,3,8,1"
    save: true
  - algorithm: insertion
    size: 12
    seed: 3
  - algorithm: binary
    dataset: "4,2,9,1,7"
    target: 9
    save: true
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Name != "tour" || len(sc.Steps) != 3 {
		t.Fatalf("scenario %+v", sc)
	}
	if sc.Steps[2].Target == nil || *sc.Steps[2].Target != 9 {
		t.Error("target not parsed")
	}

	if _, err := ParseScenario([]byte("name: empty\n")); !errors.Is(err, ErrEmptyScenario) {
		t.Errorf("got %v", err)
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	store := storage.New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	var progress bytes.Buffer

	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), RunOptions{
		Store:    store,
		Progress: &progress,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Name != "bubble demo" || results[1].Name != "insertion" {
		t.Errorf("names %q %q", results[0].Name, results[1].Name)
	}
	if results[0].RunID == "" || results[1].RunID != "" || results[2].RunID == "" {
		t.Errorf("run ids %q %q %q", results[0].RunID, results[1].RunID, results[2].RunID)
	}
	if out := results[2].Result.Outcome; out.Status != drivers.StatusFound || out.Index != 4 {
		t.Errorf("binary outcome %+v", out)
	}
	if !strings.Contains(progress.String(), "Running step 3/3: binary") {
		t.Errorf("progress %q", progress.String())
	}

	runs, err := store.List()
	if err != nil || len(runs) != 2 {
		t.Errorf("stored runs %d, %v", len(runs), err)
	}
}

func TestRunScenario_BadStep(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Algorithm: "bubble", Dataset: "2,1"},
		{Algorithm: "linear", Dataset: "2,1"},
	}}
	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), RunOptions{})
	if err == nil || !strings.Contains(err.Error(), "step 2") {
		t.Fatalf("expected step 2 failure, got %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected the first step to complete, got %d", len(results))
	}
}

func TestRunTrials(t *testing.T) {
	reg := experiment.NewRegistry()
	for _, algo := range []string{"bubble", "selection", "insertion", "linear", "binary"} {
		results, err := RunTrials(context.Background(), &TrialConfig{
			Algorithm: algo,
			Size:      20,
			NumTrials: 30,
			Seed:      5,
		}, reg)
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		correct, wrong := TrialStats(results)
		if correct != 30 || wrong != 0 {
			t.Errorf("%s: %d correct, %d wrong", algo, correct, wrong)
		}
	}
}
