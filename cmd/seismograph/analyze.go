package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/seismograph/internal/analysis"
	"github.com/san-kum/seismograph/internal/cloth"
	"github.com/san-kum/seismograph/internal/metrics"
	"github.com/san-kum/seismograph/internal/optim"
	"github.com/san-kum/seismograph/internal/sim"
	"github.com/san-kum/seismograph/internal/store"
)

var (
	sweepParam   string
	sweepLo      float64
	sweepHi      float64
	sweepSteps   int
	ensembleRuns int
	divergence   bool
	showPhase    bool

	gridSpecs  []string
	tuneMetric string
)

var objectives = map[string]func() metrics.Metric{
	"peak":       func() metrics.Metric { return metrics.NewPeak() },
	"rms":        func() metrics.Metric { return metrics.NewRMS() },
	"max_strain": func() metrics.Metric { return metrics.NewMaxStrain() },
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the drum signal",
		Long:  "Analyze an archived run, or a fresh headless run when no id is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeRun,
	}
	addStepFlags(cmd)
	cmd.Flags().BoolVar(&showPhase, "phase", false, "print the displacement/velocity portrait")
	cmd.Flags().StringVar(&sweepParam, "sweep", "", "parameter to sweep")
	cmd.Flags().Float64Var(&sweepLo, "lo", 0.1, "sweep start")
	cmd.Flags().Float64Var(&sweepHi, "hi", 2.0, "sweep end")
	cmd.Flags().IntVar(&sweepSteps, "steps", 10, "sweep points")
	cmd.Flags().IntVar(&ensembleRuns, "ensemble", 0, "also run this many seeds in parallel")
	cmd.Flags().BoolVar(&divergence, "divergence", false, "estimate band divergence in dynamic mode")
	return cmd
}

func newTuneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search parameters minimising a run metric",
		RunE:  tune,
	}
	addStepFlags(cmd)
	cmd.Flags().StringArrayVar(&gridSpecs, "grid", nil, "name=lo:hi:n, repeatable")
	cmd.Flags().StringVar(&tuneMetric, "metric", "max_strain", "peak, rms or max_strain")
	return cmd
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	var samples []float64
	rate := 1 / dt

	if len(args) == 1 {
		st := store.New(dataDir)
		meta, err := st.Load(args[0])
		if err != nil {
			return err
		}
		recorded, err := st.LoadFrames(args[0])
		if err != nil {
			return err
		}
		for _, f := range recorded {
			samples = append(samples, f.Sample)
		}
		rate = 1 / meta.Dt
		fmt.Printf("frequency analysis: %s\n\n", meta.ID)
	} else {
		d, _, err := newDriver(cmd)
		if err != nil {
			return err
		}
		rec := sim.NewRecorder(0)
		d.AddObserver(rec)
		if err := d.Run(ctx, frames, dt, nil); err != nil {
			return err
		}
		samples = rec.Samples()
		fmt.Printf("frequency analysis: %d frames at %.1f hz\n\n", len(samples), rate)
	}

	if len(samples) < 2 {
		return fmt.Errorf("no data")
	}

	ps := analysis.PowerSpectrum(samples)
	// skip DC and show the low quarter of the band
	plotData := ps[1:]
	if n := len(ps)/4 + 1; n > 2 {
		plotData = ps[1:n]
	}
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (drum signal)")))
	fmt.Println()

	freq, power := analysis.DominantFrequency(samples, rate)
	fmt.Printf("dominant frequency: %.3f hz (power %.4g)\n", freq, power)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	fmt.Printf("zero-crossing frequency: %.3f hz\n\n", analysis.CrossingFrequency(samples, 1/rate))

	if showPhase {
		fmt.Println(analysis.PhasePortraitToASCII(analysis.PhasePortrait(samples, 1/rate), 70, 20))
	}

	if sweepParam != "" {
		if err := printSweep(ctx, cmd); err != nil {
			return err
		}
	}
	if ensembleRuns > 0 {
		if err := printEnsemble(ctx, cmd); err != nil {
			return err
		}
	}
	if divergence {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts := cfg.BandOptions()
		opts.Mode = cloth.Dynamic
		lambda, err := analysis.BandDivergence(cfg.Track(), opts, dt, frames, 1e-6)
		if err != nil {
			return err
		}
		fmt.Printf("band divergence rate: %.4f /s\n", lambda)
	}
	return nil
}

func printSweep(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pts, err := analysis.Sweep(ctx, cfg, sweepParam, sweepLo, sweepHi, sweepSteps, frames, dt)
	if err != nil {
		return err
	}

	fmt.Printf("sweep %s over [%g, %g]\n", sweepParam, sweepLo, sweepHi)
	fmt.Print(analysis.SweepToASCII(pts, 60, 12))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tPEAK\tRMS\tMAX STRAIN")
	for _, p := range pts {
		fmt.Fprintf(w, "%.3f\t%.4f\t%.4f\t%.5f\n", p.Param, p.Peak, p.RMS, p.MaxStrain)
	}
	fmt.Fprintln(w)
	return w.Flush()
}

func printEnsemble(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	results, err := sim.NewEnsemble(cfg, ensembleRuns, cfg.Sim.Seed).Run(ctx, frames, dt)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tPEAK\tDOMINANT HZ")
	for i, samples := range results {
		peak := 0.0
		for _, v := range samples {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		freq, _ := analysis.DominantFrequency(samples, 1/dt)
		fmt.Fprintf(w, "%d\t%.4f\t%.3f\n", i+1, peak, freq)
	}
	fmt.Fprintln(w)
	return w.Flush()
}

func tune(cmd *cobra.Command, args []string) error {
	if len(gridSpecs) == 0 {
		return fmt.Errorf("at least one --grid is required")
	}
	newMetric, ok := objectives[tuneMetric]
	if !ok {
		return fmt.Errorf("unknown metric %q", tuneMetric)
	}

	names := make([]string, 0, len(gridSpecs))
	ranges := make([][]float64, 0, len(gridSpecs))
	for _, arg := range gridSpecs {
		name, values, err := parseGrid(arg)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Sim.Seed == 0 {
		// one seed for every candidate
		cfg.Sim.Seed = 1
	}

	logger.Info("tuning", "params", names, "metric", tuneMetric)
	best, score, err := optim.NewGridSearch(names, ranges).
		Search(context.Background(), cfg, optim.MetricObjective(newMetric, frames, dt))
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("best %s: %.6f\n", tuneMetric, score)
	for _, k := range keys {
		fmt.Printf("  %-15s %.4f\n", k, best[k])
	}
	return nil
}

// parseGrid reads name=lo:hi:n.
func parseGrid(arg string) (string, []float64, error) {
	name, rng, ok := strings.Cut(arg, "=")
	if !ok {
		return "", nil, fmt.Errorf("grid %q: want name=lo:hi:n", arg)
	}
	parts := strings.Split(rng, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("grid %q: want name=lo:hi:n", arg)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, fmt.Errorf("grid %q: %w", arg, err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, fmt.Errorf("grid %q: %w", arg, err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 1 {
		return "", nil, fmt.Errorf("grid %q: bad count", arg)
	}
	return name, optim.Linspace(lo, hi, n), nil
}
