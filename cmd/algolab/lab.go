package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algolab/internal/analysis"
	"github.com/san-kum/algolab/internal/automation"
	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/frame"
)

func listAlgorithms(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	l := frame.Lang(lang)
	for _, c := range drivers.Categories {
		fmt.Printf("%s:\n", c)
		for _, name := range registry.Algorithms(c) {
			fmt.Printf("  %-10s %s\n", name, registry.Description(c, name, l))
		}
	}
	return nil
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	fmt.Printf("benchmarking %s (%d trials per size)...\n\n", args[0], trials)
	points, err := analysis.Sweep(context.Background(), registry, analysis.SweepConfig{
		Algorithm: args[0],
		Sizes:     sizes,
		Trials:    trials,
		Seed:      seed,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCOMPARISONS\tWRITES\tFRAMES\tMAX FRAMES")
	for _, p := range points {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\t%d\n", p.Size, p.Comparisons, p.Writes, p.Frames, p.MaxFrames)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(points) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(analysis.Column(points, "frames"),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("mean frames by size index"),
		))
	}
	return nil
}

func verifyAlgorithm(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	fmt.Printf("verifying %s on %d random datasets of size %d...\n", args[0], trials, size)
	results, err := automation.RunTrials(context.Background(), &automation.TrialConfig{
		Algorithm: args[0],
		Size:      size,
		NumTrials: trials,
		Seed:      seed,
	}, registry)
	if err != nil {
		return err
	}

	correct, wrong := automation.TrialStats(results)
	fmt.Printf("correct: %d\n", correct)
	fmt.Printf("wrong: %d\n", wrong)
	for _, r := range results {
		if !r.Correct {
			fmt.Printf("  trial %d: %v -> %v (%s)\n", r.TrialID, r.Initial, r.Final, r.Outcome.Status)
		}
	}
	if wrong > 0 {
		return fmt.Errorf("%d of %d trials failed", wrong, len(results))
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	st, err := runStore(cfg)
	if err != nil {
		return err
	}

	opts := automation.RunOptions{
		Store:    st,
		Progress: os.Stdout,
		Logger:   newLogger(os.Stderr),
	}
	if accounts, err := accountStore(cfg); err == nil {
		if user, err := accounts.Current(); err == nil {
			opts.User = user.UID
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}
	results, err := automation.RunScenario(ctx, scenario, experiment.NewRegistry(), opts)
	for _, r := range results {
		line := fmt.Sprintf("  %-20s %-10s steps=%d", r.Name, r.Result.Outcome.Status, r.Result.Steps)
		if r.RunID != "" {
			line += "  run=" + r.RunID
		}
		fmt.Println(line)
	}
	return err
}
