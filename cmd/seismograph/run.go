package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/seismograph/internal/automation"
	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
	"github.com/san-kum/seismograph/internal/export"
	"github.com/san-kum/seismograph/internal/metrics"
	"github.com/san-kum/seismograph/internal/sim"
	"github.com/san-kum/seismograph/internal/store"
	"github.com/san-kum/seismograph/internal/tui"
	"github.com/san-kum/seismograph/internal/viz"
)

// strainLimit is the band strain above which a frame counts as unstable.
const strainLimit = 0.05

func runTUI(cmd *cobra.Command, args []string) error {
	var app tea.Model
	if menu {
		base, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		app = tui.NewInteractiveApp(func(name string) (*sim.Driver, error) {
			cfg := base.Clone()
			if name != "default" {
				cfg = config.GetPreset(name)
				if cfg == nil {
					return nil, fmt.Errorf("unknown preset: %s", name)
				}
				cfg.Sim.Seed = base.Sim.Seed
			}
			return sim.New(cfg)
		})
	} else {
		d, _, err := newDriver(cmd)
		if err != nil {
			return err
		}
		app = tui.NewLiveApp(d)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	d, cfg, err := newDriver(cmd)
	if err != nil {
		return err
	}

	rec := sim.NewRecorder(0)
	set := metrics.Standard(strainLimit)
	d.AddObserver(rec)
	d.AddObserver(set)
	d.AddObserver(sim.NewLogObserver(logger, sim.DefaultLogEvery))

	var renderer *tui.LiveRenderer
	if live {
		renderer = tui.NewLiveRenderer(d, os.Stdout, frameRate)
		d.AddObserver(renderer)
		renderer.Start()
		defer renderer.Stop()
	}

	logger.Info("running", "frames", frames, "dt", dt, "mode", cfg.Sim.Mode)
	start := time.Now()

	var callback func(dynamo.FrameStats) bool
	if live {
		// pace to wall clock so the repaint is watchable
		callback = func(dynamo.FrameStats) bool {
			time.Sleep(time.Duration(dt * float64(time.Second)))
			return true
		}
	}
	if err := d.Run(context.Background(), frames, dt, callback); err != nil {
		return err
	}

	elapsed := time.Since(start)
	values := set.Values()

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("frames: %d  simulated: %.2fs\n", d.Frame(), d.Time())
	printMetrics(values)

	samples := rec.Samples()
	if len(samples) > 1 {
		fmt.Println(asciigraph.Plot(samples,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("drum signal")))
		fmt.Println()
	}
	if cfg.Sim.TraceRunning {
		fmt.Println(asciigraph.Plot(d.Line().Samples(),
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("trace line")))
		fmt.Println()
	}

	return archive("run", d.Config(), rec.Frames(), values)
}

func archive(name string, cfg *config.Config, recorded []dynamo.FrameStats, values map[string]float64) error {
	if save {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(name, cfg, dt, recorded, values)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	if jsonOut != "" {
		data := store.NewExportData(name, cfg, dt, recorded, values)
		if err := store.ExportJSON(jsonOut, data); err != nil {
			return err
		}
		logger.Info("exported", "path", jsonOut)
	}
	return nil
}

func printMetrics(values map[string]float64) {
	fmt.Println("\nmetrics:")
	for _, m := range metrics.Standard(strainLimit) {
		fmt.Printf("  %-12s %.6f\n", m.Name(), values[m.Name()])
	}
	fmt.Println()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	d, _, err := newDriver(cmd)
	if err != nil {
		return err
	}
	if err := d.Run(context.Background(), frames, dt, nil); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	if err := export.SavePNG(filepath.Join(outDir, "drum.png"), d.Drum().Raster().Snapshot()); err != nil {
		return err
	}
	if err := export.SavePNG(filepath.Join(outDir, "belt.png"), d.Belt().Raster().Snapshot()); err != nil {
		return err
	}

	canvas := viz.NewCanvas(128, 16)
	canvas.DrawRaster(d.Drum().Raster().Image(), 160)
	svgs := map[string]string{
		"drum.svg": export.CanvasToSVG(canvas, 4),
		"line.svg": export.LineToSVG(d.Line().Samples(), 800, 200, ""),
	}
	for name, svg := range svgs {
		if svg == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(svg), 0644); err != nil {
			return err
		}
	}
	logger.Info("snapshot written", "dir", outDir, "frame", d.Frame())
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := sc.Config(base)
	if err != nil {
		return err
	}
	d, err := sim.New(cfg)
	if err != nil {
		return err
	}

	logger.Info("scenario", "name", sc.Name, "frames", sc.Frames, "events", len(sc.Events))
	recorded, err := automation.RunScenario(context.Background(), sc, d, logger)
	if err != nil {
		return err
	}

	set := metrics.Standard(strainLimit)
	for _, f := range recorded {
		set.OnFrame(f)
	}
	values := set.Values()
	printMetrics(values)

	dt = sc.Dt
	name := sc.Name
	if name == "" {
		name = "script"
	}
	return archive(name, d.Config(), recorded, values)
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := config.Save(args[0], cfg); err != nil {
			return err
		}
		logger.Info("config written", "path", args[0])
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
