package viewer

import (
	"image"
	"image/png"
	"os"
	"testing"

	"golang.org/x/image/bmp"
)

func testRaster(width, height int) []byte {
	raster := make([]byte, width*height*3)
	for i := range raster {
		raster[i] = byte(i % 251)
	}
	return raster
}

func TestWriteSnapshotPNG(t *testing.T) {
	settings := Settings{Width: 8, Height: 4, SnapshotDir: t.TempDir(), SnapshotFormat: "png"}
	raster := testRaster(settings.Width, settings.Height)

	name, err := writeSnapshot(settings, raster)
	if err != nil {
		t.Fatalf("writeSnapshot() returned %v", err)
	}

	file, err := os.Open(name)
	if err != nil {
		t.Fatalf("unable to open snapshot: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("snapshot is not a readable PNG: %v", err)
	}
	checkSnapshotPixels(t, img, settings, raster)
}

func TestWriteSnapshotBMP(t *testing.T) {
	settings := Settings{Width: 8, Height: 4, SnapshotDir: t.TempDir(), SnapshotFormat: "bmp"}
	raster := testRaster(settings.Width, settings.Height)

	name, err := writeSnapshot(settings, raster)
	if err != nil {
		t.Fatalf("writeSnapshot() returned %v", err)
	}

	file, err := os.Open(name)
	if err != nil {
		t.Fatalf("unable to open snapshot: %v", err)
	}
	defer file.Close()

	img, err := bmp.Decode(file)
	if err != nil {
		t.Fatalf("snapshot is not a readable BMP: %v", err)
	}
	checkSnapshotPixels(t, img, settings, raster)
}

func checkSnapshotPixels(t *testing.T, img image.Image, settings Settings, raster []byte) {
	t.Helper()

	bounds := img.Bounds()
	if bounds.Dx() != settings.Width || bounds.Dy() != settings.Height {
		t.Fatalf("snapshot is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), settings.Width, settings.Height)
	}

	for y := 0; y < settings.Height; y++ {
		for x := 0; x < settings.Width; x++ {
			red, green, blue, _ := img.At(x, y).RGBA()
			offset := (y*settings.Width + x) * 3
			if uint8(red>>8) != raster[offset] || uint8(green>>8) != raster[offset+1] || uint8(blue>>8) != raster[offset+2] {
				t.Fatalf("pixel (%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					x, y, red>>8, green>>8, blue>>8, raster[offset], raster[offset+1], raster[offset+2])
			}
		}
	}
}
