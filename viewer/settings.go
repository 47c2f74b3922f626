package viewer

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/redien/mandelbrot/misc"
)

type Settings struct {
	logger bslogger.Logger

	CenterX        float64
	CenterY        float64
	Height         int
	MinScale       float64
	Scale          float64
	SnapshotDir    string
	SnapshotFormat string
	Title          string
	Width          int
	Workers        int
	ZoomRate       float64
}

// NewSettings loads settings from a JSON file when one is given, otherwise
// starts from the zero value, and fills in defaults.
func NewSettings(settingsFile string) (Settings, error) {
	s := Settings{
		logger: bslogger.NewLogger("ViewerSettings", bslogger.Normal, nil),
	}
	if settingsFile != "" {
		err, fileBytes := misc.ReadFile(settingsFile)
		if err != nil {
			return s, err
		}
		if err := json.Unmarshal(fileBytes, &s); err != nil {
			return s, fmt.Errorf("unable to parse %s - %s", settingsFile, err)
		}
	}
	if err := s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nViewer settings\n"
	output += fmt.Sprintf("Title: %s\n", s.Title)
	output += fmt.Sprintf("Width: %d\n", s.Width)
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	output += fmt.Sprintf("Center: (%v, %v)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Scale: %g\n", s.Scale)
	output += fmt.Sprintf("Zoom Rate: %g\n", s.ZoomRate)
	output += fmt.Sprintf("Snapshot Dir: %s\n", s.SnapshotDir)
	output += fmt.Sprintf("Snapshot Format: %s\n", s.SnapshotFormat)
	return output
}

func (s *Settings) Verify() error {
	if s.Width <= 0 {
		s.Width = 256
	}
	if s.Height <= 0 {
		s.Height = 256
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
	if s.CenterX == 0 && s.CenterY == 0 {
		// Target point of the original demo, deep in seahorse valley.
		s.CenterX = 0.001643721971153
		s.CenterY = 0.822467633298876
	}
	if s.Scale <= 0 {
		s.Scale = 2.0
	}
	if s.MinScale <= 0 {
		// Below this, double precision runs out and the zoom degenerates.
		s.MinScale = 0.00000000001
	}
	if s.ZoomRate <= 0 {
		s.ZoomRate = 0.005
	}
	if s.SnapshotDir == "" {
		s.SnapshotDir = "snapshots"
	}
	if s.SnapshotFormat == "" {
		s.SnapshotFormat = "png"
	}
	if s.SnapshotFormat != "png" && s.SnapshotFormat != "bmp" {
		return fmt.Errorf("unknown snapshot format: %s", s.SnapshotFormat)
	}
	if s.Title == "" {
		s.Title = "Fractal Demo"
	}

	return nil
}
