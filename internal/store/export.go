package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
)

type ExportData struct {
	Name    string             `json:"name"`
	Dt      float64            `json:"dt"`
	Frames  int                `json:"frames"`
	Config  *config.Config     `json:"config"`
	Times   []float64          `json:"times"`
	Samples []float64          `json:"samples"`
	Phases  []float64          `json:"phases"`
	Strains []float64          `json:"strains"`
	Metrics map[string]float64 `json:"metrics"`
}

func NewExportData(name string, cfg *config.Config, dt float64, frames []dynamo.FrameStats, metrics map[string]float64) ExportData {
	data := ExportData{
		Name:    name,
		Dt:      dt,
		Frames:  len(frames),
		Config:  cfg,
		Times:   make([]float64, len(frames)),
		Samples: make([]float64, len(frames)),
		Phases:  make([]float64, len(frames)),
		Strains: make([]float64, len(frames)),
		Metrics: metrics,
	}
	for i, f := range frames {
		data.Times[i] = f.Time
		data.Samples[i] = f.Sample
		data.Phases[i] = f.Phase
		data.Strains[i] = f.Strain
	}
	return data
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}
