package viewer

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// writeSnapshot encodes a coherent raster to a timestamped image file in
// the snapshot directory and returns the file name.
func writeSnapshot(settings Settings, raster []byte) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, settings.Width, settings.Height))
	for y := 0; y < settings.Height; y++ {
		for x := 0; x < settings.Width; x++ {
			offset := (y*settings.Width + x) * 3
			p := img.PixOffset(x, y)
			img.Pix[p+0] = raster[offset+0]
			img.Pix[p+1] = raster[offset+1]
			img.Pix[p+2] = raster[offset+2]
			img.Pix[p+3] = 255
		}
	}

	if err := os.MkdirAll(settings.SnapshotDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("unable to create snapshot folder %s - %s", settings.SnapshotDir, err)
	}

	name := filepath.Join(settings.SnapshotDir, fmt.Sprintf("%s.%s", time.Now().Format("20060102150405"), settings.SnapshotFormat))
	file, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("unable to create snapshot file %s - %s", name, err)
	}

	switch settings.SnapshotFormat {
	case "bmp":
		err = bmp.Encode(file, img)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		file.Close()
		return "", fmt.Errorf("unable to encode snapshot %s - %s", name, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("unable to close snapshot %s - %s", name, err)
	}
	return name, nil
}
