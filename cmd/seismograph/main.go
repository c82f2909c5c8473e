package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/gui"
	"github.com/san-kum/seismograph/internal/sim"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	seed       uint64

	frames    int
	dt        float64
	frameRate int
	live      bool
	save      bool
	jsonOut   string
	outDir    string
	menu      bool
)

var logger *log.Logger

func main() {
	rootCmd := &cobra.Command{
		Use:           "seismograph",
		Short:         "drum seismograph with a paper conveyor band",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
		RunE: runGUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".seismograph", "run archive directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D viewer",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal view",
		RunE:  runTUI,
	}
	tuiCmd.Flags().BoolVar(&menu, "menu", false, "start on the preset menu")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and print statistics",
		RunE:  runHeadless,
	}
	addStepFlags(runCmd)
	runCmd.Flags().BoolVar(&live, "live", false, "repaint the drum in the terminal while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "live repaint rate")
	runCmd.Flags().BoolVar(&save, "save", false, "archive the run")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "also export the run as JSON to this path")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and write drum, belt and line images",
		RunE:  runSnapshot,
	}
	addStepFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&outDir, "out", ".", "output directory")

	scriptCmd := &cobra.Command{
		Use:   "script [scenario.yaml]",
		Short: "run a scripted control scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().BoolVar(&save, "save", false, "archive the run")

	analyzeCmd := newAnalyzeCmd()
	tuneCmd := newTuneCmd()

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot an archived run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export an archived run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, snapshotCmd, scriptCmd, analyzeCmd, tuneCmd,
		listCmd, plotCmd, exportCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error(err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func addStepFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&frames, "frames", 600, "frames to step")
	cmd.Flags().Float64Var(&dt, "dt", 1.0/60, "seconds per frame")
}

func setupLogger() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", logLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "seismograph",
	})
	return nil
}

// loadConfig layers defaults, then the preset, then the config file, then
// flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("seed") {
		cfg.Sim.Seed = seed
	}
	return cfg, nil
}

func newDriver(cmd *cobra.Command) (*sim.Driver, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	d, err := sim.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("driver ready", "mode", cfg.Sim.Mode, "band_length", cfg.Conveyor.BandLength, "seed", cfg.Sim.Seed)
	return d, cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	d, _, err := newDriver(cmd)
	if err != nil {
		return err
	}
	d.AddObserver(sim.NewLogObserver(logger, sim.DefaultLogEvery))
	gui.Run(d, logger)
	return nil
}
