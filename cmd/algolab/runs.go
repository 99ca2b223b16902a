package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/algolab/internal/analysis"
	"github.com/san-kum/algolab/internal/config"
	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/engine"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/export"
	"github.com/san-kum/algolab/internal/frame"
	"github.com/san-kum/algolab/internal/metrics"
	"github.com/san-kum/algolab/internal/storage"
	"github.com/san-kum/algolab/internal/tui"
)

// runConfig merges config file, preset, positional algorithm and flags.
// Presets replace the file values; flags override both only when set.
func runConfig(cmd *cobra.Command, args []string, registry *experiment.Registry) (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()

	if preset != "" {
		cat := cfg.Category
		if flags.Changed("category") {
			cat = category
		}
		p := config.GetPreset(cat, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cat))
		}
		p.DataDir, p.Accounts, p.Language, p.Theme = cfg.DataDir, cfg.Accounts, cfg.Language, cfg.Theme
		cfg = p
	}

	if flags.Changed("category") {
		cfg.Category = category
	}
	if len(args) > 0 {
		cfg.Algorithm = args[0]
		if !flags.Changed("category") {
			cat, err := registry.Find(args[0])
			if err != nil {
				return nil, err
			}
			cfg.Category = string(cat)
		}
	} else if flags.Changed("category") && !registry.Has(cfg.GetCategory(), cfg.Algorithm) {
		cfg.Algorithm = registry.DefaultAlgorithm(cfg.GetCategory())
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("target") {
		t := target
		cfg.Target = &t
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("dataset") {
		cfg.Dataset = dataset
	}
	if flags.Changed("lang") {
		cfg.Language = lang
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, cfg.Validate()
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	cfg, err := runConfig(cmd, args, registry)
	if err != nil {
		return err
	}

	data, err := cfg.GetDataset()
	if err != nil {
		return err
	}
	expCfg := experiment.Config{
		Category:  cfg.GetCategory(),
		Algorithm: cfg.Algorithm,
		Size:      cfg.Size,
		Speed:     cfg.Speed,
		Seed:      cfg.Seed,
		Dataset:   data,
		Lang:      cfg.GetLang(),
	}
	expCfg.Target, expCfg.HasTarget = cfg.GetTarget()
	if expCfg.Category == drivers.Searching && !expCfg.HasTarget {
		return fmt.Errorf("%s (--target)", cfg.GetLang().Format(frame.MsgInvalidTarget))
	}

	exp := experiment.New(expCfg)
	if err := exp.Setup(registry, registry.DefaultMetrics(), newLogger(os.Stderr)); err != nil {
		return err
	}
	exp.Runner().AddObserver(metrics.NewPromObserver(cfg.Algorithm))

	sleep := engine.NoSleep
	if live {
		renderer := tui.NewLiveRenderer(os.Stdout, cfg.Algorithm)
		exp.Runner().AddObserver(renderer)
		renderer.Start()
		defer renderer.Stop()
		sleep = engine.Sleep
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s on %v...\n", cfg.Algorithm, exp.Data())
	start := time.Now()
	done := metrics.RunStarted(cfg.Algorithm)
	result, err := exp.Run(ctx, sleep)
	if err != nil {
		done("error")
		return err
	}
	done(result.Outcome.Status.String())
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("outcome: %s\n", result.Outcome.Status)
	if result.Outcome.Status == drivers.StatusFound {
		fmt.Printf("index: %d\n", result.Outcome.Index)
	}
	fmt.Printf("status: %s\n", result.Final.Status)
	fmt.Printf("final: %v\n", result.Data)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Println("\nmetrics:")
	for _, m := range registry.DefaultMetrics() {
		fmt.Printf("  %s: %.2f\n", m.Name(), result.Metrics[m.Name()])
	}

	if noSave {
		return nil
	}
	st, err := runStore(cfg)
	if err != nil {
		return err
	}
	info := storage.RunInfo{
		Algorithm: cfg.Algorithm,
		Category:  cfg.Category,
		Seed:      cfg.Seed,
		Speed:     cfg.Speed,
		Target:    cfg.Target,
		Initial:   exp.Data(),
	}
	if accounts, err := accountStore(cfg); err == nil {
		if user, err := accounts.Current(); err == nil {
			info.User = user.UID
		}
	}
	runID, err := st.Save(info, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func openRunStore() (*storage.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return runStore(cfg)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openRunStore()
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tCATEGORY\tTIME\tSIZE\tSPEED\tOUTCOME\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%d\n",
			run.ID,
			run.Algorithm,
			run.Category,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Speed,
			run.Outcome,
			run.Steps,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st, err := openRunStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s (%s)\n", meta.Algorithm, meta.Category)
	if meta.Target != nil {
		fmt.Printf("target: %d\n", *meta.Target)
	}
	fmt.Printf("initial: %v\n", meta.Initial)
	fmt.Printf("outcome: %s\n\n", meta.Outcome)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tKIND\tVALUES\tSTATUS")
	for _, f := range frames {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", f.Step, f.Kind, markValues(f), f.Status)
	}
	return w.Flush()
}

// markValues prints values with a tag suffix on highlighted indices, e.g. 5* 3*.
func markValues(f frame.Frame) string {
	marks := map[frame.Tag]string{
		frame.TagCompare: "?",
		frame.TagSwap:    "*",
		frame.TagPivot:   "^",
		frame.TagSorted:  "=",
	}
	parts := make([]string, len(f.Values))
	for i, v := range f.Values {
		parts[i] = fmt.Sprint(v)
		if i < len(f.Tags) {
			parts[i] += marks[f.Tags[i]]
		}
	}
	return strings.Join(parts, " ")
}

func plotRun(cmd *cobra.Command, args []string) error {
	st, err := openRunStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("frames: %d\n\n", len(frames))

	tr := analysis.Trace(frames)
	series := []struct {
		data    []float64
		caption string
	}{
		{tr.Inversions, "inversions remaining"},
		{tr.Sorted, "indices marked sorted"},
		{tr.Writes, "cumulative writes"},
	}
	for _, s := range series {
		graph := asciigraph.Plot(s.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if outFile != "" {
		svg := export.SeriesToSVG(tr.Inversions, 800, 300, "#00ff88")
		if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st, err := openRunStore()
	if err != nil {
		return err
	}
	return st.ExportRun(os.Stdout, args[0])
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st, err := openRunStore()
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	return storage.WriteFramesCSV(os.Stdout, frames)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st, err := openRunStore()
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run %s has no frames", args[0])
	}

	f := frames[len(frames)-1]
	if stepIndex >= 0 {
		found := false
		for _, candidate := range frames {
			if candidate.Step == stepIndex {
				f, found = candidate, true
				break
			}
		}
		if !found {
			return fmt.Errorf("step %d not in run (0-%d)", stepIndex, frames[len(frames)-1].Step)
		}
	}

	svg := export.FrameToSVG(f, 800, 400)
	if outFile == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote step %d to %s\n", f.Step, outFile)
	return nil
}
