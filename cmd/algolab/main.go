package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/san-kum/algolab/internal/account"
	"github.com/san-kum/algolab/internal/config"
	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/experiment"
	"github.com/san-kum/algolab/internal/playback"
	"github.com/san-kum/algolab/internal/storage"
	"github.com/san-kum/algolab/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool

	// run
	category  string
	size      int
	speed     int
	target    int
	seed      int64
	dataset   string
	preset    string
	lang      string
	live      bool
	noSave    bool
	stepIndex int
	outFile   string

	// bench, verify
	sizes  []int
	trials int

	// serve
	addr string

	// accounts
	name        string
	email       string
	password    string
	confirm     string
	newPassword string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "algolab",
		Short:        "sorting and searching visualizer",
		SilenceUsage: true,
		RunE:         runLab,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".algolab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run an algorithm headless and save its frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAlgorithm,
	}
	runCmd.Flags().StringVar(&category, "category", config.DefaultCategory, "sorting or searching")
	runCmd.Flags().IntVar(&size, "size", 15, "dataset size (5-50)")
	runCmd.Flags().IntVar(&speed, "speed", 500, "speed (50-1000), delay is 1050-speed ms")
	runCmd.Flags().IntVar(&target, "target", 0, "value to search for")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time)")
	runCmd.Flags().StringVar(&dataset, "dataset", "", "explicit values, e.g. 5,3,8,1")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&lang, "lang", "id", "status language (id, en)")
	runCmd.Flags().BoolVar(&live, "live", false, "draw every frame with the speed delay")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the frames of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot inversions, sorted indices and writes per frame",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&outFile, "svg", "", "also write the inversion curve as svg")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render one frame of a run as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&stepIndex, "step", -1, "frame step (default last)")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [category]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := []string{string(drivers.Sorting), string(drivers.Searching)}
			if len(args) > 0 {
				cats = args
			}
			for _, c := range cats {
				presets := config.ListPresets(c)
				if len(presets) == 0 {
					fmt.Printf("no presets for category: %s\n", c)
					continue
				}
				fmt.Printf("presets for %s:\n", c)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms with descriptions",
		RunE:  listAlgorithms,
	}
	algorithmsCmd.Flags().StringVar(&lang, "lang", "id", "description language (id, en)")

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "measure comparisons, writes and frames across dataset sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", []int{5, 10, 20, 30, 40, 50}, "dataset sizes")
	benchCmd.Flags().IntVar(&trials, "trials", 5, "runs per size")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	verifyCmd := &cobra.Command{
		Use:   "verify [algorithm]",
		Short: "check an algorithm on random datasets",
		Args:  cobra.ExactArgs(1),
		RunE:  verifyAlgorithm,
	}
	verifyCmd.Flags().IntVar(&trials, "trials", 100, "number of random datasets")
	verifyCmd.Flags().IntVar(&size, "size", 20, "dataset size")
	verifyCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the lab over http",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "create an account and sign in",
		RunE:  register,
	}
	registerCmd.Flags().StringVar(&name, "name", "", "full name")
	registerCmd.Flags().StringVar(&email, "email", "", "email")
	registerCmd.Flags().StringVar(&password, "password", "", "password")
	registerCmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "sign in",
		RunE:  login,
	}
	loginCmd.Flags().StringVar(&email, "email", "", "email")
	loginCmd.Flags().StringVar(&password, "password", "", "password")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "sign out",
		RunE:  logout,
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "show the signed-in account",
		RunE:  whoami,
	}

	passwdCmd := &cobra.Command{
		Use:   "passwd",
		Short: "change the password and sign out",
		RunE:  changePassword,
	}
	passwdCmd.Flags().StringVar(&password, "current", "", "current password")
	passwdCmd.Flags().StringVar(&newPassword, "new", "", "new password")
	passwdCmd.Flags().StringVar(&confirm, "confirm", "", "new password confirmation")

	rootCmd.AddCommand(runCmd, listCmd, showCmd, plotCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd,
		presetsCmd, algorithmsCmd, benchCmd, verifyCmd, scenarioCmd, serveCmd,
		registerCmd, loginCmd, logoutCmd, whoamiCmd, passwdCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config when given and falls back to the defaults.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(dataDir, dir)
}

func runStore(cfg *config.Config) (*storage.Store, error) {
	st := storage.New(resolve(cfg.DataDir))
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func accountStore(cfg *config.Config) (*account.Store, error) {
	return account.Open(resolve(cfg.Accounts.Dir))
}

// currentUser returns the signed-in account, or an error carrying the user
// message when nobody is signed in.
func currentUser(accounts *account.Store) (*account.Profile, error) {
	user, err := accounts.Current()
	if errors.Is(err, account.ErrNotSignedIn) {
		return nil, fmt.Errorf("%s (run 'algolab login' or 'algolab register')", account.Message(err))
	}
	return user, err
}

// runLab opens the interactive lab for the signed-in user. Logs go to a file
// because the screen belongs to the lab.
func runLab(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	accounts, err := accountStore(cfg)
	if err != nil {
		return err
	}
	user, err := currentUser(accounts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}
	logFile, err := os.OpenFile(filepath.Join(dataDir, "algolab.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()

	opts := playback.Options{
		Registry:  experiment.NewRegistry(),
		Lang:      cfg.GetLang(),
		Logger:    newLogger(logFile),
		Category:  cfg.GetCategory(),
		Algorithm: cfg.Algorithm,
		Size:      cfg.Size,
		Speed:     cfg.Speed,
	}
	if t, ok := cfg.GetTarget(); ok {
		opts.Target = fmt.Sprint(t)
	}
	return viz.RunLab(opts, user, cfg.Theme)
}
