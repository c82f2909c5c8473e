package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/seismograph/internal/store"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tFRAMES\tDT\tMODE\tPEAK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%s\t%.4f\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Dt,
			run.Mode,
			run.Metrics["peak"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	recorded, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(recorded) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: %s\n", meta.Mode)
	fmt.Printf("frames: %d\n\n", len(recorded))

	series := []struct {
		caption string
		get     func(i int) float64
	}{
		{"drum signal", func(i int) float64 { return recorded[i].Sample }},
		{"band phase", func(i int) float64 { return recorded[i].Phase }},
		{"band strain", func(i int) float64 { return recorded[i].Strain }},
	}
	for _, s := range series {
		data := make([]float64, len(recorded))
		for i := range recorded {
			data[i] = s.get(i)
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		))
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	recorded, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	data := store.NewExportData(meta.Name, meta.Config, meta.Dt, recorded, meta.Metrics)
	return store.WriteJSON(os.Stdout, data)
}
