package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

func WritePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return fmt.Errorf("export: nil image")
	}
	return png.Encode(w, img)
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
