package gui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/seismograph/internal/config"
	"github.com/san-kum/seismograph/internal/dynamo"
)

// Decor is an optional model drawn next to the conveyor. It has no effect
// on the simulation.
type Decor struct {
	Name  string
	Model rl.Model
}

// LoadDecor loads the needle and collection box models named in the config.
// Empty paths are skipped; anything that fails to load is logged and
// skipped so the scene still comes up.
func LoadDecor(logger *log.Logger, assets config.AssetsConfig) []Decor {
	var out []Decor
	for _, asset := range []struct{ name, path string }{
		{"needle", assets.Needle},
		{"collection_box", assets.CollectionBox},
	} {
		if asset.path == "" {
			continue
		}
		m, err := loadModel(asset.path)
		if err != nil {
			logger.Warn("skipping decor", "name", asset.name, "err", err)
			continue
		}
		logger.Debug("decor loaded", "name", asset.name, "path", asset.path)
		out = append(out, Decor{Name: asset.name, Model: m})
	}
	return out
}

func loadModel(path string) (rl.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("%s: %v: %w", path, err, dynamo.ErrAssetLoad)
	}
	m := rl.LoadModel(path)
	if !rl.IsModelValid(m) {
		return rl.Model{}, fmt.Errorf("%s: %w", path, dynamo.ErrAssetLoad)
	}
	return m, nil
}
